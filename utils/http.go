// utils/http.go
package utils

import (
	"net/http"
	"time"
)

// HTTPClient is shared by outbound calls (R2 downloads). Datasets are small.
var HTTPClient = &http.Client{
	Timeout: 60 * time.Second,
}
