package api

import (
	"prtrack/internal/domain/pullrequest"
	"prtrack/internal/domain/repository"

	"github.com/tidwall/gjson"
)

func firstOf(value gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := value.Get(p); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}

	return gjson.Result{}
}

// arrayOf yields the elements of an array value and nothing for null,
// missing or scalar values.
func arrayOf(value gjson.Result) []gjson.Result {
	if !value.IsArray() {
		return nil
	}

	return value.Array()
}

func parseRepository(value gjson.Result) *repository.Entity {
	repo := &repository.Entity{
		ID:    repository.EntityID(value.Get("id").String()),
		Owner: value.Get("owner").String(),
		Name:  value.Get("name").String(),
	}

	if c := firstOf(value, "createdAt", "created_at"); c.Exists() {
		if t := c.Time(); !t.IsZero() {
			repo.CreatedAt = &t
		}
	}

	return repo
}

func parsePullRequest(value gjson.Result) *pullrequest.Entity {
	pr := &pullrequest.Entity{
		ID:        pullrequest.EntityID(value.Get("id").String()),
		Number:    int(value.Get("number").Int()),
		Title:     value.Get("title").String(),
		Author:    value.Get("author").String(),
		AvatarURL: value.Get("avatar_url").String(),
		HTMLURL:   value.Get("html_url").String(),
		Status:    pullrequest.State(value.Get("status").String()),
		Draft:     value.Get("draft").Bool(),
		CreatedAt: value.Get("created_at").String(),
		Labels:    []pullrequest.Label{},
	}

	for _, l := range arrayOf(value.Get("labels")) {
		pr.Labels = append(pr.Labels, pullrequest.Label{
			Name:  l.Get("name").String(),
			Color: l.Get("color").String(),
		})
	}

	return pr
}
