package models

import "encoding/json"

// CreateAccountRequest is the payload accepted when adding a new account.
// Password is a pointer so validation can tell an absent field from an
// empty one; the plaintext is hashed and discarded before storage.
type CreateAccountRequest struct {
	Account

	Password *string `json:"password,omitempty"`
}

func (r CreateAccountRequest) MarshalJSON() ([]byte, error) {
	doc := r.Account.document()
	if r.Password != nil {
		doc["password"] = *r.Password
	}
	return json.Marshal(doc)
}

func (r *CreateAccountRequest) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*r = CreateAccountRequest{}
	if raw, ok := doc["password"]; ok {
		var pw string
		if err := json.Unmarshal(raw, &pw); err != nil {
			return err
		}
		r.Password = &pw
		// the plaintext must never leak into extension data
		delete(doc, "password")
	}

	rest, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.Account.UnmarshalJSON(rest)
}

// UpdateAccountRequest carries a partial, additive update of an existing
// account. Username names the target record. NewUsername and NewPassword are
// optional rename/credential changes; Fields holds every other supplied key
// (fixed profile fields and extension data alike) to be merged onto the
// stored record.
type UpdateAccountRequest struct {
	Username    string
	NewUsername *string
	NewPassword *string
	Fields      map[string]any
}

func (r UpdateAccountRequest) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		doc[k] = v
	}
	doc["username"] = r.Username
	if r.NewUsername != nil {
		doc["new_username"] = *r.NewUsername
	}
	if r.NewPassword != nil {
		doc["new_password"] = *r.NewPassword
	}
	return json.Marshal(doc)
}

func (r *UpdateAccountRequest) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*r = UpdateAccountRequest{}
	for key, raw := range doc {
		switch key {
		case "username":
			if err := json.Unmarshal(raw, &r.Username); err != nil {
				return err
			}
		case "new_username":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			r.NewUsername = &v
		case "new_password":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			r.NewPassword = &v
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			if r.Fields == nil {
				r.Fields = make(map[string]any)
			}
			r.Fields[key] = v
		}
	}

	return nil
}

// AuthenticateRequest is the body POSTed to the password verification
// endpoint. The password travels as a plain JSON field; deployments are
// expected to provide transport-level confidentiality (TLS).
type AuthenticateRequest struct {
	Password string `json:"password"`
}
