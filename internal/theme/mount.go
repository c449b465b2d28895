package theme

import "net/http"

// Binder yields the persisted Store for one request.
type Binder interface {
	Bind(w http.ResponseWriter, r *http.Request) Store
}

// Mount creates the unready controller for one request: its store is bound
// to the request, its system signal is the color scheme the request reports,
// and its root starts with no theme class. The response advertises the
// client hint so later requests carry it.
func Mount(w http.ResponseWriter, r *http.Request, b Binder) *Controller {
	AdvertiseClientHint(w.Header())
	return NewController(b.Bind(w, r), RequestSignal(r), NewClassList())
}
