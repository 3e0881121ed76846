package models

import "encoding/json"

// Account represents a single user identity record stored by the service.
// Sensitive fields hold derived values only: PasswordHash MUST be the output
// of the password hashing adapter, never a plaintext password.
type Account struct {
	// ID is the unique opaque identifier of the account, in the form
	// "user-<hex>". It is generated server-side at creation time when the
	// caller does not supply one and is immutable afterwards.
	ID string `json:"id"`

	// Username is the unique account name. Uniqueness is case-sensitive
	// and enforced by the storage layer.
	Username string `json:"username"`

	// PasswordHash is the stored one-way hash of the account password.
	// A plaintext password is never persisted or returned.
	PasswordHash string `json:"password_hash"`

	// DisplayName is the optional human-readable name shown in UIs.
	DisplayName string `json:"display_name"`

	// Email is the account contact address. Required on creation.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone"`

	// Extra holds caller-supplied extension fields. Any JSON key that is
	// not a fixed field lands here on decode and is flattened back to the
	// top level on encode, so unknown keys round-trip unchanged.
	Extra map[string]any `json:"-"`

	// Tokens maps an access-token string to its stored credential record.
	Tokens map[string]TokenRecord `json:"tokens,omitempty"`
}

// TokenRecord is the per-token credential stored under Account.Tokens.
type TokenRecord struct {
	// AccessSecret is the secret paired with the access token.
	AccessSecret string `json:"access_secret"`

	// Extra preserves any additional keys stored alongside the secret.
	Extra map[string]any `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// fixed JSON keys recognised on an account document. Everything else is
// extension data.
var accountFixedKeys = map[string]struct{}{
	"id":            {},
	"username":      {},
	"password_hash": {},
	"display_name":  {},
	"email":         {},
	"phone":         {},
	"tokens":        {},
}

// document returns the flat wire/storage representation of the account:
// extension keys first, fixed fields on top. A fixed field name always
// shadows an extension key of the same name.
func (a Account) document() map[string]any {
	doc := make(map[string]any, len(a.Extra)+7)
	for k, v := range a.Extra {
		doc[k] = v
	}
	doc["id"] = a.ID
	doc["username"] = a.Username
	doc["password_hash"] = a.PasswordHash
	doc["display_name"] = a.DisplayName
	doc["email"] = a.Email
	doc["phone"] = a.Phone
	if a.Tokens != nil {
		doc["tokens"] = a.Tokens
	} else {
		delete(doc, "tokens")
	}
	return doc
}

// Field looks up a single field by its wire name, checking fixed fields
// before extension data. The second return reports whether the field is set.
func (a Account) Field(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "username":
		return a.Username, true
	case "password_hash":
		return a.PasswordHash, true
	case "display_name":
		return a.DisplayName, true
	case "email":
		return a.Email, true
	case "phone":
		return a.Phone, true
	case "tokens":
		return a.Tokens, a.Tokens != nil
	}
	v, ok := a.Extra[name]
	return v, ok
}

// MarshalJSON flattens extension fields to the top level of the JSON object
// so that schemaless keys supplied at creation come back unchanged on lookup.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.document())
}

// UnmarshalJSON decodes fixed fields into their typed slots and collects
// every unrecognised key into Extra.
func (a *Account) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*a = Account{}
	for key, raw := range doc {
		var err error
		switch key {
		case "id":
			err = json.Unmarshal(raw, &a.ID)
		case "username":
			err = json.Unmarshal(raw, &a.Username)
		case "password_hash":
			err = json.Unmarshal(raw, &a.PasswordHash)
		case "display_name":
			err = json.Unmarshal(raw, &a.DisplayName)
		case "email":
			err = json.Unmarshal(raw, &a.Email)
		case "phone":
			err = json.Unmarshal(raw, &a.Phone)
		case "tokens":
			err = json.Unmarshal(raw, &a.Tokens)
		default:
			var v any
			if err = json.Unmarshal(raw, &v); err == nil {
				if a.Extra == nil {
					a.Extra = make(map[string]any)
				}
				a.Extra[key] = v
			}
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// MarshalJSON keeps unrecognised token-record keys at the top level next to
// access_secret, mirroring how account extension fields are flattened.
func (t TokenRecord) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(t.Extra)+1)
	for k, v := range t.Extra {
		doc[k] = v
	}
	doc["access_secret"] = t.AccessSecret
	return json.Marshal(doc)
}

// UnmarshalJSON splits a token record into the typed access_secret and the
// remaining open fields.
func (t *TokenRecord) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*t = TokenRecord{}
	for key, raw := range doc {
		if key == "access_secret" {
			if err := json.Unmarshal(raw, &t.AccessSecret); err != nil {
				return err
			}
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if t.Extra == nil {
			t.Extra = make(map[string]any)
		}
		t.Extra[key] = v
	}

	return nil
}
