package overseerr

import "github.com/reconcilarr/reconcilarr/httpclient"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	pageSize    int
	httpOptions []httpclient.Option
}

// WithPageSize sets the take/skip window used when paginating requests.
func WithPageSize(size int) Option {
	return func(o *clientOptions) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

// WithHTTPOptions passes options through to the underlying HTTP client.
func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(o *clientOptions) {
		o.httpOptions = append(o.httpOptions, opts...)
	}
}
