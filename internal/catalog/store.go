package catalog

// Store holds the catalog rows loaded at start-up. The row set never changes
// after NewStore returns; callers only ever receive copies.
type Store struct {
	rows       []Row
	source     string
	categories []string
	materials  []string
}

// NewStore copies rows into a store and numbers them in order.
func NewStore(rows []Row) *Store {
	return newStore(rows, "")
}

func newStore(rows []Row, source string) *Store {
	s := &Store{rows: make([]Row, len(rows)), source: source}
	for i, r := range rows {
		r.ID = i
		s.rows[i] = r
	}
	s.categories = distinct(s.rows, func(r Row) string { return r.Category })
	s.materials = distinct(s.rows, func(r Row) string { return r.Material })
	return s
}

// Rows returns the rows in load order.
func (s *Store) Rows() []Row {
	if s == nil || len(s.rows) == 0 {
		return nil
	}
	dup := make([]Row, len(s.rows))
	copy(dup, s.rows)
	return dup
}

// Len returns the number of rows.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Source names the document the rows were loaded from, if any.
func (s *Store) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Categories lists the distinct non-empty categories in first-seen order.
func (s *Store) Categories() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.categories...)
}

// Materials lists the distinct non-empty materials in first-seen order.
func (s *Store) Materials() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.materials...)
}

func distinct(rows []Row, field func(Row) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
