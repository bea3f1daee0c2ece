package commands_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/session"
	"tasklist/internal/store"
)

// newSession returns a session whose task IDs are t1, t2, ...
func newSession(t *testing.T) *session.Session {
	t.Helper()
	n := 0
	cfg := config.New(t.TempDir())
	cfg.Seed = 1
	sess := session.New(cfg, nil, store.WithIDFunc(func() store.ID {
		n++
		return store.ID(fmt.Sprintf("t%d", n))
	}))
	t.Cleanup(sess.Close)
	return sess
}

// runCommand is a helper to run a command against a session.
func runCommand(t *testing.T, cmd commands.Command, sess *session.Session, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := *sess.Config()
	cfg.Quiet = quiet

	code = cmd.Run(context.Background(), &cfg, sess, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func labels(sess *session.Session) []string {
	var out []string
	for _, task := range sess.Store().Tasks() {
		out = append(out, task.Label)
	}
	return out
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, newSession(t), nil, false)

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
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, newSession(t), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "add [--icon <kind>] <label...>", "commit [--icon <kind>] [--close] [<label...>]", "quit"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	sess := newSession(t)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, sess, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	want := []store.Task{{ID: "t1", Label: "Buy milk", Icon: store.Square}}
	if diff := cmp.Diff(want, sess.Store().Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.AddCmd{}, newSession(t), []string{"x"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_BlankLabel(t *testing.T) {
	sess := newSession(t)

	for _, args := range [][]string{nil, {" "}} {
		stdout, stderr, code := runCommand(t, &commands.AddCmd{}, sess, args, false)

		if code != exitcode.UserError {
			t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
		}
		if stdout != "" {
			t.Errorf("expected no stdout, got %q", stdout)
		}
		if stderr != "error: label required\n" {
			t.Errorf("expected label required error, got %q", stderr)
		}
	}
	if sess.Store().Len() != 0 {
		t.Errorf("expected no tasks, got %d", sess.Store().Len())
	}
}

func TestAddCommand_WithIcon(t *testing.T) {
	sess := newSession(t)
	cmd := &commands.AddCmd{}
	cmd.SetIcon("Event")

	_, stderr, code := runCommand(t, cmd, sess, []string{"Dentist"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if got := sess.Store().Tasks()[0].Icon; got != store.Event {
		t.Errorf("expected icon event, got %v", got)
	}
}

func TestAddCommand_DefaultIconFromConfig(t *testing.T) {
	sess := newSession(t)
	sess.Config().DefaultIcon = "privacy"

	_, _, code := runCommand(t, &commands.AddCmd{}, sess, []string{"secret"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if got := sess.Store().Tasks()[0].Icon; got != store.Privacy {
		t.Errorf("expected icon privacy, got %v", got)
	}
}

func TestAddCommand_UnknownIcon(t *testing.T) {
	sess := newSession(t)
	cmd := &commands.AddCmd{}
	cmd.SetIcon("star")

	_, stderr, code := runCommand(t, cmd, sess, []string{"x"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown icon: star\n" {
		t.Errorf("expected unknown icon error, got %q", stderr)
	}
	if sess.Store().Len() != 0 {
		t.Errorf("expected no tasks, got %d", sess.Store().Len())
	}
}

// Tests for rm command
func TestRmCommand_ByNumber(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)
	sess.Store().Add("Y", store.Square)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, sess, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	if diff := cmp.Diff([]string{"Y"}, labels(sess)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestRmCommand_ByIDTwice(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)
	sess.Store().Add("Y", store.Square)

	for i := 0; i < 2; i++ {
		_, stderr, code := runCommand(t, &commands.RmCmd{}, sess, []string{"t1"}, false)
		if code != exitcode.Success {
			t.Errorf("attempt %d: expected exit code %d, got %d (%s)", i+1, exitcode.Success, code, stderr)
		}
	}
	if sess.Store().Len() != 1 {
		t.Errorf("expected 1 task, got %d", sess.Store().Len())
	}
}

func TestRmCommand_OutOfRange(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, sess, []string{"2"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task number out of range: 2\n" {
		t.Errorf("expected out of range error, got %q", stderr)
	}
	if sess.Store().Len() != 1 {
		t.Errorf("expected 1 task, got %d", sess.Store().Len())
	}
}

func TestRmCommand_NoRef(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.RmCmd{}, newSession(t), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("expected task reference required, got %q", stderr)
	}
}

func TestRmCommand_EditedTaskEndsEdit(t *testing.T) {
	sess := newSession(t)
	a := sess.Store().Add("X", store.Square)
	if err := sess.Store().SelectForEdit(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, code := runCommand(t, &commands.RmCmd{}, sess, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if _, ok := sess.Store().CurrentEdit(); ok {
		t.Error("expected edit to end when its task is removed")
	}
}

// Tests for edit command
func TestEditCommand_Success(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)
	b := sess.Store().Add("Y", store.Square)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, sess, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	if sess.Store().EditingID() != b.ID {
		t.Errorf("expected editing %q, got %q", b.ID, sess.Store().EditingID())
	}
}

func TestEditCommand_UnknownID(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, sess, []string{"nope"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task not found: nope\n" {
		t.Errorf("expected not found error, got %q", stderr)
	}
	if sess.Store().EditingID() != "" {
		t.Errorf("expected no edit, got %q", sess.Store().EditingID())
	}
}

// Tests for commit command
func TestCommitCommand_NoEdit(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)

	stdout, stderr, code := runCommand(t, &commands.CommitCmd{}, sess, []string{"Z"}, false)

	if code != exitcode.EditError {
		t.Errorf("expected exit code %d, got %d", exitcode.EditError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: no task is being edited\n" {
		t.Errorf("expected no edit error, got %q", stderr)
	}
	if diff := cmp.Diff([]string{"X"}, labels(sess)); diff != "" {
		t.Errorf("labels changed (-want +got):\n%s", diff)
	}
}

func TestCommitCommand_LabelAndIcon(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)
	b := sess.Store().Add("Buy milk", store.Square)
	sess.Store().Add("Z", store.Square)
	if err := sess.Store().SelectForEdit(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := &commands.CommitCmd{}
	cmd.SetIcon("done")
	stdout, stderr, code := runCommand(t, cmd, sess, []string{"Buy", "oat", "milk"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	want := []store.Task{
		{ID: "t1", Label: "X", Icon: store.Square},
		{ID: "t2", Label: "Buy oat milk", Icon: store.Done},
		{ID: "t3", Label: "Z", Icon: store.Square},
	}
	if diff := cmp.Diff(want, sess.Store().Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
	if sess.Store().EditingID() != b.ID {
		t.Errorf("expected edit to stay active on %q, got %q", b.ID, sess.Store().EditingID())
	}
}

func TestCommitCommand_IconOnlyKeepsLabel(t *testing.T) {
	sess := newSession(t)
	a := sess.Store().Add("Keep me", store.Square)
	if err := sess.Store().SelectForEdit(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := &commands.CommitCmd{}
	cmd.SetIcon("trash")
	_, _, code := runCommand(t, cmd, sess, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	got, _ := sess.Store().Get(a.ID)
	if got.Label != "Keep me" || got.Icon != store.Trash {
		t.Errorf("unexpected task %+v", got)
	}
}

func TestCommitCommand_Close(t *testing.T) {
	sess := newSession(t)
	a := sess.Store().Add("X", store.Square)
	if err := sess.Store().SelectForEdit(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := &commands.CommitCmd{}
	cmd.SetClose(true)
	_, _, code := runCommand(t, cmd, sess, []string{"Y"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if _, ok := sess.Store().CurrentEdit(); ok {
		t.Error("expected edit to end with --close")
	}
	if diff := cmp.Diff([]string{"Y"}, labels(sess)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCommitCommand_BlankLabel(t *testing.T) {
	sess := newSession(t)
	a := sess.Store().Add("X", store.Square)
	if err := sess.Store().SelectForEdit(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, stderr, code := runCommand(t, &commands.CommitCmd{}, sess, []string{"  "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: label required\n" {
		t.Errorf("expected label required error, got %q", stderr)
	}
}

// Tests for cancel command
func TestCancelCommand_Idempotent(t *testing.T) {
	sess := newSession(t)
	a := sess.Store().Add("X", store.Square)
	if err := sess.Store().SelectForEdit(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		stdout, _, code := runCommand(t, &commands.CancelCmd{}, sess, nil, false)
		if code != exitcode.Success {
			t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
		}
		if stdout != "ok\n" {
			t.Errorf("expected 'ok\\n', got %q", stdout)
		}
	}
	if _, ok := sess.Store().CurrentEdit(); ok {
		t.Error("expected no active edit")
	}
}

// Tests for current command
func TestCurrentCommand(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("X", store.Square)
	b := sess.Store().Add("Y", store.Event)

	stdout, _, _ := runCommand(t, &commands.CurrentCmd{}, sess, nil, false)
	if stdout != "no task is being edited\n" {
		t.Errorf("expected no edit message, got %q", stdout)
	}

	if err := sess.Store().SelectForEdit(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stdout, stderr, code := runCommand(t, &commands.CurrentCmd{}, sess, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "   2* [e] Y  (t2)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for list command
func TestListCommand_Empty(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, newSession(t), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks\n" {
		t.Errorf("expected %q, got %q", "no tasks\n", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.ListCmd{}, newSession(t), nil, true)

	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_MarksEditedTask(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("Buy milk", store.Square)
	b := sess.Store().Add("Call mum", store.Event)
	sess.Store().Add("", store.Done)
	if err := sess.Store().SelectForEdit(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stdout, _, code := runCommand(t, &commands.ListCmd{}, sess, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ] Buy milk\n   2* [e] Call mum\n   3  [x] (untitled)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_WithIDs(t *testing.T) {
	sess := newSession(t)
	sess.Store().Add("Buy milk", store.Square)

	cmd := &commands.ListCmd{}
	cmd.SetWithIDs(true)
	stdout, _, _ := runCommand(t, cmd, sess, nil, false)

	expected := "   1  [ ] Buy milk  (t1)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_UnexpectedArgument(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.ListCmd{}, newSession(t), []string{"x"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: x\n" {
		t.Errorf("expected unexpected argument error, got %q", stderr)
	}
}

// Tests for sample command
func TestSampleCommand(t *testing.T) {
	sess := newSession(t)
	cmd := &commands.SampleCmd{}
	cmd.SetCount(3)

	stdout, _, code := runCommand(t, cmd, sess, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	if sess.Store().Len() != 3 {
		t.Errorf("expected 3 tasks, got %d", sess.Store().Len())
	}
}

func TestSampleCommand_InvalidCount(t *testing.T) {
	cmd := &commands.SampleCmd{}
	cmd.SetCount(0)

	_, stderr, code := runCommand(t, cmd, newSession(t), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid count: 0\n" {
		t.Errorf("expected invalid count error, got %q", stderr)
	}
}

// Tests for icons command
func TestIconsCommand(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.IconsCmd{}, newSession(t), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "[ ]  square   SquareIcon\n" +
		"[x]  done     DoneIcon\n" +
		"[e]  event    EventIcon\n" +
		"[p]  privacy  PrivacyIcon\n" +
		"[t]  trash    TrashIcon\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for the registry
func TestRegistry_FindByAliasCaseInsensitive(t *testing.T) {
	for _, name := range []string{"rm", "REMOVE", "ls", "save", "Select"} {
		if _, ok := commands.DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to be registered", name)
		}
	}
}

func TestRegistry_DuplicateAlias(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register(&commands.ListCmd{})
	if err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err.Error() != "command name already registered: list" {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestRegistry_AllSortedUnique(t *testing.T) {
	var names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		names = append(names, cmd.Name())
	}
	want := []string{"add", "cancel", "commit", "current", "edit", "help", "icons", "list", "rm", "sample", "version"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}
