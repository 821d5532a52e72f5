package pullrequest

type State string

type EntityID string

type Label struct {
	Name  string
	Color string
}

// Entity is a pull request as mirrored by the API server. Number and Draft
// are zero when the server omits them.
type Entity struct {
	ID        EntityID
	Number    int
	Title     string
	Author    string
	AvatarURL string
	HTMLURL   string
	Labels    []Label
	Status    State
	Draft     bool
	CreatedAt string
}
