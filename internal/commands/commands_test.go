package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/alexrayosb/CRUD-TodoList/internal/commands"
	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc service.Service, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	log, _ := logtest.NewNullLogger()

	cfg := &config.Config{
		Dir:     t.TempDir(),
		BaseURL: config.DefaultBaseURL,
		Quiet:   quiet,
		Logger:  log,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func expectOps(t *testing.T, svc *testutil.FakeService, want ...string) {
	t.Helper()
	if got := svc.Ops(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected calls %v, got %v", want, got)
	}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tasklist 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.Golden(t, "help", []byte(stdout))
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", false)
	svc.AddTask("Buy eggs", "a dozen", true)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "------------\nTask List\n------------\n" +
		"   1  #1  Buy milk - No description - Pending\n" +
		"   2  #2  Buy eggs - a dozen - Completed\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected %q, got %q", "no tasks found\n", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	// Quiet mode should suppress "no tasks found"
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = testutil.ServerError("list", 500)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error: backend error: fetch tasks: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetDescription("2 liters")
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	expectOps(t, svc, "create", "list")
	want := service.NewTask{Title: "Buy milk", Description: "2 liters"}
	if got := svc.Calls()[0].New; got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy", "milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_NoTitle(t *testing.T) {
	for _, args := range [][]string{nil, {"  ", "\t"}} {
		svc := testutil.NewFakeService()

		stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, args, false)

		if code != exitcode.UserError {
			t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
		}
		if stdout != "" {
			t.Errorf("expected no stdout, got %q", stdout)
		}
		if stderr != "error: title required\n" {
			t.Errorf("expected title required error, got %q", stderr)
		}
		expectOps(t, svc)
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = testutil.ServerError("create", 500)

	_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.HasPrefix(stderr, "error: backend error: create task: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	expectOps(t, svc, "create")
}

// Tests for toggle command
func TestToggleCommand_ByRow(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "", false)
	second := svc.AddTask("B", "", false)

	stdout, stderr, code := runCommand(t, &commands.ToggleCmd{}, svc, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok: Completed\n" {
		t.Errorf("expected 'ok: Completed\\n', got %q", stdout)
	}

	expectOps(t, svc, "list", "update", "list")
	want := service.Task{ID: second, Title: "B", Completed: true}
	if got := svc.Calls()[1].Task; got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestToggleCommand_ByIDBackToPending(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("A", "notes", true)

	cmd := &commands.ToggleCmd{}
	cmd.SetByID(true)
	stdout, _, code := runCommand(t, cmd, svc, []string{id.String()}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok: Pending\n" {
		t.Errorf("expected 'ok: Pending\\n', got %q", stdout)
	}
	if svc.Tasks()[0].Completed {
		t.Error("expected task to be pending")
	}
}

func TestToggleCommand_ByIDMatchesDigitStringID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: service.StringID("42"), Title: "A"})

	cmd := &commands.ToggleCmd{}
	cmd.SetByID(true)
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"42"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok: Completed\n" {
		t.Errorf("expected 'ok: Completed\\n', got %q", stdout)
	}

	expectOps(t, svc, "list", "update", "list")
	// The PUT echoes the identifier in the kind the server sent
	data, err := json.Marshal(svc.Calls()[1].Task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"42"` {
		t.Errorf("expected string id in update, got %s", data)
	}
}

func TestRmCommand_ByIDMatchesDigitStringID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SeedTask(service.Task{ID: service.StringID("42"), Title: "A"})

	cmd := &commands.RmCmd{}
	cmd.SetByID(true)
	_, stderr, code := runCommand(t, cmd, svc, []string{"42"}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if len(svc.Tasks()) != 0 {
		t.Errorf("expected task deleted, got %+v", svc.Tasks())
	}
}

func TestToggleCommand_OutOfRange(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "", false)

	_, stderr, code := runCommand(t, &commands.ToggleCmd{}, svc, []string{"3"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number out of range: 3\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	expectOps(t, svc, "list")
}

func TestToggleCommand_UnknownID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ToggleCmd{}
	cmd.SetByID(true)
	_, stderr, code := runCommand(t, cmd, svc, []string{"9"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 9\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestToggleCommand_NoRef(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.ToggleCmd{}, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("expected task reference required error, got %q", stderr)
	}
	expectOps(t, svc)
}

func TestToggleCommand_InvalidRef(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.ToggleCmd{}, svc, []string{"first"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task reference: first\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestToggleCommand_UpdateFails(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "", false)
	svc.UpdateTaskErr = testutil.ServerError("update", 500)

	_, stderr, code := runCommand(t, &commands.ToggleCmd{}, svc, []string{"1"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.HasPrefix(stderr, "error: backend error: update task: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Tasks()[0].Completed {
		t.Error("expected task unchanged")
	}
}

// Tests for rm command
func TestRmCommand_ByRow(t *testing.T) {
	svc := testutil.NewFakeService()
	first := svc.AddTask("A", "", false)
	svc.AddTask("B", "", false)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	expectOps(t, svc, "list", "delete", "list")
	if svc.Calls()[1].ID != first {
		t.Errorf("expected delete of %s, got %s", first, svc.Calls()[1].ID)
	}
	if tasks := svc.Tasks(); len(tasks) != 1 || tasks[0].Title != "B" {
		t.Errorf("expected only B left, got %+v", tasks)
	}
}

func TestRmCommand_ByIDSkipsLookup(t *testing.T) {
	svc := testutil.NewFakeService()
	id := svc.AddTask("A", "", false)

	cmd := &commands.RmCmd{}
	cmd.SetByID(true)
	_, _, code := runCommand(t, cmd, svc, []string{id.String()}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expectOps(t, svc, "delete", "list")
}

func TestRmCommand_DeleteFails(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.RmCmd{}
	cmd.SetByID(true)
	_, stderr, code := runCommand(t, cmd, svc, []string{"5"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "status: 404") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for health command
func TestHealthCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.HealthCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok: http://localhost:8080\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestHealthCommand_Down(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.PingErr = testutil.ServerError("ping", 503)

	_, _, code := runCommand(t, &commands.HealthCmd{}, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
}

// brokenInput fails every read, as a closed or missing terminal would.
type brokenInput struct{}

func (brokenInput) Read([]byte) (int, error) { return 0, errors.New("input unavailable") }

// Tests for ui command
func TestUICommand_InputFailure(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.UICmd{In: brokenInput{}}, svc, nil, false)

	if code != exitcode.TerminalError {
		t.Errorf("expected exit code %d, got %d", exitcode.TerminalError, code)
	}
	if !strings.HasPrefix(stderr, "error: terminal: ") || !strings.Contains(stderr, "input unavailable") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for the registry
func TestRegistry_AliasesResolve(t *testing.T) {
	for alias, name := range map[string]string{"create": "add", "done": "toggle", "delete": "rm", "ls": "list"} {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok || cmd.Name() != name {
			t.Errorf("expected alias %q to resolve to %q", alias, name)
		}
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.ListCmd{}); err == nil {
		t.Error("expected duplicate name error")
	}
	if len(r.All()) != 1 {
		t.Errorf("expected 1 command, got %d", len(r.All()))
	}
}
