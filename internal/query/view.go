package query

// View holds the mutable filter and paging state of one roster screen.
// Every filter or page-size change resets the current page to 1; the
// engine itself stays pure.
type View struct {
	engine *Engine
	params Params
}

// NewView creates a view with the default page state.
func NewView(engine *Engine) *View {
	return &View{
		engine: engine,
		params: Params{
			Filters:  make(map[string]string),
			Page:     1,
			PageSize: DefaultPageSize,
		},
	}
}

// SetSearch replaces the free-text term and resets the page.
func (v *View) SetSearch(term string) {
	v.params.Search = term
	v.params.Page = 1
}

// SetFilter replaces one categorical predicate value and resets the
// page. FilterAll disables the predicate.
func (v *View) SetFilter(field, value string) {
	v.params.Filters[field] = value
	v.params.Page = 1
}

// SetPageSize replaces the rows-per-page count and resets the page.
// Non-positive sizes fall back to the default.
func (v *View) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	v.params.PageSize = size
	v.params.Page = 1
}

// SetPage stores the requested page. Out-of-range values are clamped by
// the engine when the view is queried.
func (v *View) SetPage(page int) {
	v.params.Page = page
}

// Params returns a copy of the current query state.
func (v *View) Params() Params {
	p := v.params
	p.Filters = make(map[string]string, len(v.params.Filters))
	for k, val := range v.params.Filters {
		p.Filters[k] = val
	}
	return p
}

// Query runs the view's current state against a record snapshot.
func (v *View) Query(rows []Row) Result {
	return v.engine.Query(rows, v.params)
}
