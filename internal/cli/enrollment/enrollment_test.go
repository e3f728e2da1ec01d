package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	cliutil "github.com/thenoetrevino/shsenroll/internal/testutil/cli"
)

// ============================================================================
// Add
// ============================================================================

func TestAdd_NormalizesInput(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(),
		[]string{"add", "--id=" + id, "--grade=Grade 11", "--strand=stem", "--json"})
	require.NoError(t, err)

	data := cliutil.JSONData(t, output)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "11", data["grade_level"])
	assert.Equal(t, "STEM", data["strand"])
}

func TestAdd_TwiceIsConflict(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	args := []string{"add", "--id=" + id, "--grade=11", "--strand=ICT", "--json"}

	_, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), args)
	require.NoError(t, err)

	output, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(),
		[]string{"add", "--id=" + id, "--grade=12", "--strand=GAS", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitConflict, cli.ExitCodeFor(err))
	errData := cliutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errData["code"])

	// First enrollment is unchanged
	output, err = cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), []string{"list", "--json"})
	require.NoError(t, err)
	rows := cliutil.JSONData(t, output)["enrollments"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "ICT", rows[0].(map[string]any)["strand"])
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"unregistered student", []string{"add", "--id=S000404", "--grade=11", "--strand=STEM"}, cli.ExitNotFound},
		{"unknown strand", []string{"add", "--id=S000001", "--grade=11", "--strand=ABM"}, cli.ExitValidation},
		{"unknown grade", []string{"add", "--id=S000001", "--grade=10", "--strand=STEM"}, cli.ExitValidation},
		{"missing strand", []string{"add", "--id=S000001", "--grade=11"}, cli.ExitValidation},
		{"missing id", []string{"add", "--grade=11", "--strand=STEM"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, testCLI := cliutil.SetupCLITest(t)
			cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

			_, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFor(err))
		})
	}
}

// ============================================================================
// List
// ============================================================================

func TestList_Filters(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	a := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	b := cliutil.CreateTestStudent(t, db, "Ben", "Reyes")
	c := cliutil.CreateTestStudent(t, db, "Cora", "Santos")
	cliutil.CreateTestEnrollment(t, db, a, "11", "STEM")
	cliutil.CreateTestEnrollment(t, db, b, "12", "STEM")
	cliutil.CreateTestEnrollment(t, db, c, "11", "GAS")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no filter", []string{"list"}, []string{a, b, c}},
		{"all keyword", []string{"list", "--grade=all", "--strand=ALL"}, []string{a, b, c}},
		{"grade only", []string{"list", "--grade=11"}, []string{a, c}},
		{"strand only", []string{"list", "--strand=stem"}, []string{a, b}},
		{"both", []string{"list", "--grade=12", "--strand=STEM"}, []string{b}},
		{"no match", []string{"list", "--grade=12", "--strand=GAS"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), append(tt.args, "--quiet"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cliutil.Lines(output))
		})
	}
}

func TestList_InvalidFilterIsUsageError(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), []string{"list", "--strand=ABM", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestList_HumanOutput(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	cliutil.CreateTestEnrollment(t, db, id, "11", "HUMSS")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, output, "Ana Cruz")
	assert.Contains(t, output, "HUMSS")
}

// ============================================================================
// Update / Drop
// ============================================================================

func TestUpdate(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	cliutil.CreateTestEnrollment(t, db, id, "11", "STEM")

	_, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(),
		[]string{"update", "--id=" + id, "--grade=12", "--strand=ICT", "--json"})
	require.NoError(t, err)

	output, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), []string{"list", "--grade=12", "--strand=ICT", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{id}, cliutil.Lines(output))
}

func TestUpdate_NotEnrolled(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	_, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(),
		[]string{"update", "--id=" + id, "--grade=12", "--strand=ICT", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

func TestDrop(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	cliutil.CreateTestEnrollment(t, db, id, "11", "STEM")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), []string{"drop", "--id=" + id, "--force", "--json"})
	require.NoError(t, err)
	data := cliutil.JSONData(t, output)
	assert.Equal(t, "dropped", data["action"])

	// Dropping again finds nothing
	_, err = cliutil.ExecuteCLICommand(t, testCLI, EnrollmentCmd(), []string{"drop", "--id=" + id, "--force", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}
