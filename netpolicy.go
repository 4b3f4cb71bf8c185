package resume2pdf

import (
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// NetworkPolicy declares which resource loads a rendering page may perform.
// Everything else is aborted at the network layer, not merely ignored. This
// is the mechanism guaranteeing offline determinism: no external resource
// can be fetched during rendering regardless of what the HTML references.
type NetworkPolicy struct {
	// AllowedTypes are the resource types a page may load.
	AllowedTypes map[proto.NetworkResourceType]bool

	// AllowedSchemes are URL scheme prefixes a page may load from.
	AllowedSchemes []string
}

// DefaultNetworkPolicy permits only the document itself, stylesheets, and
// fonts, and only from local or embedded-data origins. Images, scripts,
// XHR, and anything cross-origin are blocked.
func DefaultNetworkPolicy() NetworkPolicy {
	return NetworkPolicy{
		AllowedTypes: map[proto.NetworkResourceType]bool{
			proto.NetworkResourceTypeDocument:   true,
			proto.NetworkResourceTypeStylesheet: true,
			proto.NetworkResourceTypeFont:       true,
		},
		AllowedSchemes: []string{"file:", "data:", "blob:", "about:"},
	}
}

// Allows reports whether a request of the given resource type and URL may
// proceed.
func (np NetworkPolicy) Allows(resType proto.NetworkResourceType, url string) bool {
	if !np.AllowedTypes[resType] {
		return false
	}
	for _, scheme := range np.AllowedSchemes {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

// Apply installs the policy on a page via request hijacking. The router
// runs until the page closes.
func (np NetworkPolicy) Apply(page *rod.Page) {
	router := page.HijackRequests()

	router.MustAdd("*", func(h *rod.Hijack) {
		if np.Allows(h.Request.Type(), h.Request.URL().String()) {
			h.ContinueRequest(&proto.FetchContinueRequest{})
			return
		}
		h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
	})

	go router.Run()
}
