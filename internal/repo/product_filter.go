package repo

// ProductFilter selects and paginates products.
// Category is compared case-insensitively for equality, Search as a
// case-insensitive substring of the name. Page and Limit are 1-based;
// values below 1 disable pagination.
type ProductFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}
