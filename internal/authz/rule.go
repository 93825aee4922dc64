package authz

type Rule interface {
	Exec(env map[string]any) (bool, error)
}

// Rules is a set of rules bound to a page
type Rules interface {
	Page() string
	Rules() []Rule
}
