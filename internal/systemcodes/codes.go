package systemcodes

const (
	ErrorCodeGeneric = 1
	ErrorCodeConfig  = 3
	ErrorCodeTUI     = 4
)
