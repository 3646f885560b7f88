package response

// ErrResp is the standard JSON failure body. Success responses carry
// the resource payload directly, so only failures are enveloped.
type ErrResp struct {
	Message string `json:"message"`
}
