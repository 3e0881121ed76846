package adapter

import "errors"

// ErrCommunication covers transport failures and any error response whose
// kind the client does not recognize.
var ErrCommunication = errors.New("communication error")
