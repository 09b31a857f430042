package request

// PushSubscriptionRequest matches the browser's PushSubscription.toJSON() shape.
type PushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys"`
}

type DeletePushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
}
