package cli

import (
	"strings"
	"testing"
)

func TestRequireDataFile(t *testing.T) {
	old := dataFile
	t.Cleanup(func() { dataFile = old })

	dataFile = ""
	if _, err := requireDataFile(); err == nil || !strings.Contains(err.Error(), "--file") {
		t.Errorf("expected hint about --file, got %v", err)
	}

	dataFile = "/srv/doacoes.csv"
	got, err := requireDataFile()
	if err != nil {
		t.Fatalf("requireDataFile failed: %v", err)
	}
	if got != "/srv/doacoes.csv" {
		t.Errorf("requireDataFile() = %q", got)
	}
}

func TestDeleteCmd_RejectsNonNumericID(t *testing.T) {
	cmd := DeleteCmd()
	cmd.SetArgs([]string{"abc"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), `invalid donation id "abc"`) {
		t.Errorf("expected invalid id error, got %v", err)
	}
}

func TestLogCmd_RejectsUnknownAction(t *testing.T) {
	cmd := LogCmd()
	cmd.SetArgs([]string{"--action", "update"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid action: update") {
		t.Errorf("expected invalid action error, got %v", err)
	}
}

func TestAddCmd_RequiresFields(t *testing.T) {
	cmd := AddCmd()
	cmd.SetArgs([]string{"--name", "Ana"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected missing required flags error")
	}
}
