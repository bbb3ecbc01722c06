package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"myspec.dev/pkg/myspec/internal/domain"
	domainmocks "myspec.dev/pkg/myspec/internal/domain/mocks"
)

func TestListCmd_PassesSuitesAndExcludes(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return assert.ObjectsAreEqual([]string{"members"}, args.Suites) &&
			assert.ObjectsAreEqual([]string{"^after$"}, args.Exclude)
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--exclude", "^after$", "members"})
	err := cmd.Execute()
	require.NoError(t, err)
}
