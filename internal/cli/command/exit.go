package command

import (
	"strings"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
)

// Exit statuses returned by ExitCode.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps err to a process exit status. Domain errors in the 4xxx
// range (bad config, unreadable dataset) are input problems and exit with
// ExitUsage. Everything else exits with ExitFailure.
func ExitCode(err error) int {
	code := domain.GetErrorCode(err)
	if i := strings.LastIndexByte(code, '-'); i >= 0 && strings.HasPrefix(code[i+1:], "4") {
		return ExitUsage
	}
	return ExitFailure
}
