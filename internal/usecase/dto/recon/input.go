package recondto

// ReconcileInput is the shared contract of both entry points. Gateway names
// the gateway-settings document holding the secret key: the webhook fills it
// from the pushed envelope's metadata, the poll endpoint from the client
// request.
type ReconcileInput struct {
	Reference string
	Gateway   string
}
