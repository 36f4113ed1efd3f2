package form

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	logPolicyOnce sync.Once
	logPolicy     *bluemonday.Policy
)

// sanitizeForLog strips markup from free-text values before they reach the
// logs.
func sanitizeForLog(raw string) string {
	logPolicyOnce.Do(func() {
		logPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(logPolicy.Sanitize(raw))
}
