package testhelpers

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/nix-user-chroot/chroot"
	"github.com/onsi/gomega/types"
)

// AbortOperation succeeds when actual is an error that stopped the given
// operation under the failure policy.
func AbortOperation(op chroot.Operation) types.GomegaMatcher {
	return &abortOperationMatcher{
		expected: op,
	}
}

type abortOperationMatcher struct {
	expected chroot.Operation
}

func (matcher *abortOperationMatcher) Match(actual interface{}) (success bool, err error) {
	if actual == nil {
		return false, nil
	}

	actualErr, ok := actual.(error)
	if !ok {
		return false, fmt.Errorf("AbortOperation matcher expects an error")
	}

	var opErr *chroot.OperationError
	if !errors.As(actualErr, &opErr) {
		return false, nil
	}

	return opErr.Op == matcher.expected, nil
}

func (matcher *abortOperationMatcher) FailureMessage(actual interface{}) (message string) {
	if actual == nil {
		return fmt.Sprintf("Expected error, got nil")
	}

	actualErr, _ := actual.(error)
	return fmt.Sprintf("Expected error\n\t%s\nto abort operation\n\t%s", actualErr.Error(), matcher.expected)
}

func (matcher *abortOperationMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	actualErr, _ := actual.(error)
	return fmt.Sprintf("Expected error\n\t%s\nnot to abort operation\n\t%s", actualErr.Error(), matcher.expected)
}
