package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	cliutil "github.com/thenoetrevino/shsenroll/internal/testutil/cli"
)

func registerArgs(first, last string, extra ...string) []string {
	args := []string{
		"register",
		"--first=" + first,
		"--last=" + last,
		"--gender=Female",
		"--birth-date=2009-06-01",
		"--contact=09171234567",
		"--guardian-name=Maria " + last,
		"--guardian-contact=09181234567",
	}
	return append(args, extra...)
}

// ============================================================================
// Register
// ============================================================================

func TestRegister_JSON(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), registerArgs("Ana", "Cruz", "--middle=B", "--json"))
	require.NoError(t, err)

	data := cliutil.JSONData(t, output)
	assert.Equal(t, "S000001", data["id"])
	assert.Equal(t, "Ana B Cruz", data["full_name"])
	assert.Greater(t, data["age"].(float64), float64(16))
}

func TestRegister_QuietPrintsSequentialIDs(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	first, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), registerArgs("Ana", "Cruz", "--quiet"))
	require.NoError(t, err)
	second, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), registerArgs("Ben", "Reyes", "--quiet"))
	require.NoError(t, err)

	assert.Equal(t, "S000001\n", first)
	assert.Equal(t, "S000002\n", second)
}

func TestRegister_MissingFields(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"register", "--first=Ana", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

	result := cliutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errData["code"])
	assert.Contains(t, errData["message"], "Last Name")
}

func TestRegister_Underage(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	args := registerArgs("Ana", "Cruz", "--json")
	args[4] = "--birth-date=2020-01-01"
	_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), args)
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}

func TestRegister_InteractiveRejectsMachineOutput(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"register", "--interactive", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

// ============================================================================
// List / Show
// ============================================================================

func TestRegisterThenList(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), registerArgs("Ana", "Cruz", "--quiet"))
	require.NoError(t, err)
	id := cliutil.CreateTestStudent(t, db, "Ben", "Reyes")
	cliutil.CreateTestEnrollment(t, db, id, "11", "STEM")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"list", "--json"})
	require.NoError(t, err)

	data := cliutil.JSONData(t, output)
	assert.Equal(t, float64(2), data["count"])
	students := data["students"].([]any)
	require.Len(t, students, 2)

	first := students[0].(map[string]any)
	assert.Equal(t, "S000001", first["id"])
	assert.Equal(t, false, first["enrolled"])
	second := students[1].(map[string]any)
	assert.Equal(t, id, second["id"])
	assert.Equal(t, true, second["enrolled"])
}

func TestList_SearchIsCaseSensitive(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	reyes := cliutil.CreateTestStudent(t, db, "Ben", "Reyes")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"list", "--search=Reyes", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{reyes}, cliutil.Lines(output))

	output, err = cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"list", "--search=reyes", "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, cliutil.Lines(output))
}

func TestList_HumanOutput(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, output, "Ana Cruz")
	assert.Contains(t, output, "Unenrolled")
	assert.Contains(t, output, "1 student(s)")
}

func TestShow(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"show", "--id=" + id, "--json"})
	require.NoError(t, err)

	data := cliutil.JSONData(t, output)
	assert.Equal(t, "Ana", data["first_name"])
	assert.Equal(t, "2009-06-01", data["birth_date"])
}

func TestShow_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"unknown id", []string{"show", "--id=S000099", "--json"}, cli.ExitNotFound},
		{"malformed id", []string{"show", "--id=42", "--json"}, cli.ExitUsage},
		{"missing id", []string{"show", "--json"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, testCLI := cliutil.SetupCLITest(t)
			_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFor(err))
		})
	}
}

// ============================================================================
// Update / Delete
// ============================================================================

func TestUpdate_KeepsUnsetFields(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(),
		[]string{"update", "--id=" + id, "--contact=09990000000", "--json"})
	require.NoError(t, err)

	data := cliutil.JSONData(t, output)
	assert.Equal(t, "09990000000", data["contact"])
	assert.Equal(t, "Ana", data["first_name"])
	assert.Equal(t, "Cruz", data["last_name"])
}

func TestUpdate_InvalidContact(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(),
		[]string{"update", "--id=" + id, "--contact=123", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}

func TestDelete(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"delete", "--id=" + id, "--force", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, id+"\n", output)

	_, err = cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"show", "--id=" + id, "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

func TestDelete_BlockedWhileEnrolled(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")
	cliutil.CreateTestEnrollment(t, db, id, "12", "HUMSS")

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"delete", "--id=" + id, "--force", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitBlocked, cli.ExitCodeFor(err))

	errData := cliutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "DELETION_BLOCKED", errData["code"])
}

func TestDelete_UnknownID(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"delete", "--id=S000009", "--force", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

// ============================================================================
// Age
// ============================================================================

func TestAge(t *testing.T) {
	_, testCLI := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"age", "--birth-date=2000-01-01", "--json"})
	require.NoError(t, err)
	data := cliutil.JSONData(t, output)
	assert.GreaterOrEqual(t, data["age"].(float64), float64(25))

	_, err = cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"age", "--birth-date=2000-13-01", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}

func TestDelete_ConfirmationNeedsTerminal(t *testing.T) {
	db, testCLI := cliutil.SetupCLITest(t)
	id := cliutil.CreateTestStudent(t, db, "Ana", "Cruz")

	// Test stdout is a pipe, so the confirmation form cannot run
	_, err := cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"delete", "--id=" + id})
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrNotInteractive)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	_, err = cliutil.ExecuteCLICommand(t, testCLI, StudentCmd(), []string{"show", "--id=" + id, "--quiet"})
	require.NoError(t, err)
}
