package gctable

// Provider loads genetic code tables by NCBI genetic code id.
//
// Load returns an errs.NotFound error for an unknown id and an
// errs.Unresolvable error for malformed table data.
type Provider interface {
	Load(id int) (*Table, error)
}

// Lister is implemented by providers which can enumerate their ids.
type Lister interface {
	IDs() []int
}

// IDs returns the ids known to p, or nil if p can't list them.
func IDs(p Provider) []int {
	if l, ok := p.(Lister); ok {
		return l.IDs()
	}
	return nil
}
