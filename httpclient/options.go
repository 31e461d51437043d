package httpclient

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout      time.Duration
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:      30 * time.Second,
		maxRetries:   3,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 10 * time.Second,
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryWait sets the bounds for the exponential backoff between retries.
func WithRetryWait(min, max time.Duration) Option {
	return func(o *clientOptions) {
		o.retryWaitMin = min
		o.retryWaitMax = max
	}
}
