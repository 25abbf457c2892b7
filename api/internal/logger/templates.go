package logger

func (l Logger) TemplMerchantInfo(message string, merchantId string, email string) {
	l.Info(message, LS_MERCHANTS, true, "merchant_id", merchantId, "email", email)
}

// store adapter failures, the lookup chain stops on them
func (l Logger) TemplStoreErr(message, store, key string, err error) {
	l.Error(message, LS_STORES, true, "store", store, "key", key, "error", err.Error())
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, ipv4 string, err error) {
	l.Fatal(message, LS_FATAL, true, "error", err.Error(), "ipv4", ipv4)
}

func (l Logger) TemplHTTPErr(message, uri, ip, errorId string, err error) string {
	l.Error(message, LS_HTTP, true, "uri", uri, "ip", ip, "error_id", errorId, "error", err.Error())
	return errorId
}

func (l Logger) TemplNatsError(message, natsUrl string, err error) {
	l.Error(message, LS_NATS, true, "nats_url", natsUrl, "error", err.Error())
}

func (l Logger) TemplNatsInfo(message, natsUrl string) {
	l.Info(message, LS_NATS, true, "nats_url", natsUrl, "error", NA)
}
