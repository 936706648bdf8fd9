package domain

import "context"

// AccessDocPath is the path of the allow-list document in the document store.
const AccessDocPath = "others/cms-access"

// Identity is an authenticated admin-panel user as presented by the
// external identity provider.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AccessList is the allow-list document. Full holds the complete list of
// emails permitted to use the admin panel.
type AccessList struct {
	Full []string `json:"full"`
}

// AccessListRepository fetches the allow-list document. Implementations
// must read from the source of truth on every call; the decision to admit
// an admin is never made from a cached copy.
type AccessListRepository interface {
	Get(ctx context.Context) (*AccessList, error)
}

// AccessService decides whether an identity may use the admin panel.
type AccessService interface {
	// Authorize returns whether the identity's email is on the allow-list.
	// A nil identity is always denied. A failed allow-list fetch denies and
	// returns the fetch error so the caller can distinguish "denied" from
	// "could not decide".
	Authorize(ctx context.Context, identity *Identity) (bool, error)
}
