package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	gerrors "github.com/PolarWolf314/gswitch/internal/errors"
	"github.com/PolarWolf314/gswitch/internal/gitcfg"
)

// TestAddCommand contains tests for the `gsw add` command.
func TestAddCommand(t *testing.T) {
	t.Run("AddWithFlags", testAddWithFlags)
	t.Run("AddReplacesExisting", testAddReplacesExisting)
	t.Run("AddMissingEmailNonInteractive", testAddMissingEmailNonInteractive)
	t.Run("AddPromptsForMissingValues", testAddPromptsForMissingValues)
	t.Run("AddRejectsInvalidEmail", testAddRejectsInvalidEmail)
}

func testAddWithFlags(t *testing.T) {
	env := setupTestEnvironment(t, testRepo)

	output := env.mustRun(t, "add", "work", "--user-name", "Jane Smith", "--email", "jane@company.com")

	if !strings.Contains(output, "Added profile 'work'") {
		t.Errorf("Expected success message, got: %s", output)
	}
	if !strings.Contains(output, "<jane@company.com>") {
		t.Errorf("Expected email in output, got: %s", output)
	}

	p, ok := env.loadStore(t).Get("work")
	if !ok {
		t.Fatal("Profile was not saved")
	}
	if p.UserName != "Jane Smith" || p.Email != "jane@company.com" || p.SigningKey != "" {
		t.Errorf("Unexpected profile saved: %+v", p)
	}
}

func testAddReplacesExisting(t *testing.T) {
	env := setupTestEnvironment(t, testRepo)
	env.seedProfiles(t, personalProfile)

	output := env.mustRun(t, "add", "personal", "--user-name", "J", "--email", "j@home.org")

	if !strings.Contains(output, "Updated profile 'personal'") {
		t.Errorf("Expected update message, got: %s", output)
	}
	p, _ := env.loadStore(t).Get("personal")
	if p.SigningKey != "" {
		t.Errorf("Expected replacement to drop the signing key, got %q", p.SigningKey)
	}
}

func testAddMissingEmailNonInteractive(t *testing.T) {
	env := setupTestEnvironment(t, testRepo)

	_, _, err := env.run(t, "add", "work", "--user-name", "Jane Smith")
	if !errors.Is(err, gerrors.ErrInvalidProfile) {
		t.Errorf("Expected ErrInvalidProfile, got %v", err)
	}
	if env.loadStore(t).Len() != 0 {
		t.Error("Nothing should have been saved")
	}
}

func testAddPromptsForMissingValues(t *testing.T) {
	env := setupTestEnvironment(t, testRepo)
	addInteractive = func() bool { return true }

	stdout, stderr, err := env.runWithInput(t, "Jane Smith\njane@company.com\n\n", "add", "work")
	if err != nil {
		t.Fatalf("Command failed: %v\n%s%s", err, stdout, stderr)
	}
	if !strings.Contains(stderr, "Email: ") {
		t.Errorf("Expected prompts on stderr, got: %s", stderr)
	}

	p, ok := env.loadStore(t).Get("work")
	if !ok || p.UserName != "Jane Smith" || p.Email != "jane@company.com" {
		t.Errorf("Unexpected profile saved: %+v", p)
	}
}

func testAddRejectsInvalidEmail(t *testing.T) {
	env := setupTestEnvironment(t, testRepo)

	_, _, err := env.run(t, "add", "work", "--user-name", "Jane", "--email", "not-an-email")
	if !errors.Is(err, gerrors.ErrInvalidEmail) {
		t.Errorf("Expected ErrInvalidEmail, got %v", err)
	}
}

// TestImportCommand contains tests for the `gsw import` command.
func TestImportCommand(t *testing.T) {
	t.Run("ImportGlobalIdentity", func(t *testing.T) {
		env := setupTestEnvironment(t, "/tmp/scratch")
		env.setGlobal(t, gitcfg.KeyUserName, "Jane Smith")
		env.setGlobal(t, gitcfg.KeyUserEmail, "jane@company.com")
		env.setGlobal(t, gitcfg.KeySigningKey, "ABC123")

		output := env.mustRun(t, "import", "work")

		if !strings.Contains(output, "Imported current git identity as profile 'work'") {
			t.Errorf("Expected import message, got: %s", output)
		}
		p, ok := env.loadStore(t).Get("work")
		if !ok || p.SigningKey != "ABC123" {
			t.Errorf("Unexpected profile saved: %+v", p)
		}
	})

	t.Run("ImportExistingNeedsForce", func(t *testing.T) {
		env := setupTestEnvironment(t, "/tmp/scratch")
		env.seedProfiles(t, workProfile)
		env.setGlobal(t, gitcfg.KeyUserName, "Other")
		env.setGlobal(t, gitcfg.KeyUserEmail, "other@company.com")

		if _, _, err := env.run(t, "import", "work"); !errors.Is(err, gerrors.ErrProfileExists) {
			t.Fatalf("Expected ErrProfileExists, got %v", err)
		}

		output := env.mustRun(t, "import", "work", "--force")
		if !strings.Contains(output, "Replaced current git identity") {
			t.Errorf("Expected replace message, got: %s", output)
		}
		p, _ := env.loadStore(t).Get("work")
		if p.Email != "other@company.com" {
			t.Errorf("Expected forced import to replace the profile, got %+v", p)
		}
	})

	t.Run("ImportWithoutIdentity", func(t *testing.T) {
		env := setupTestEnvironment(t, "/tmp/scratch")

		_, _, err := env.run(t, "import", "work")
		if !errors.Is(err, gerrors.ErrIdentityNotConfigured) {
			t.Errorf("Expected ErrIdentityNotConfigured, got %v", err)
		}
	})
}

// TestListCommand contains tests for the `gsw list` command.
func TestListCommand(t *testing.T) {
	t.Run("ListEmpty", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)

		output := env.mustRun(t, "list")
		if !strings.Contains(output, "No profiles configured.") {
			t.Errorf("Expected empty message, got: %s", output)
		}
	})

	t.Run("ListMarksCurrent", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)
		env.seedProfiles(t, workProfile, personalProfile)
		env.mustRun(t, "switch", "personal")

		output := env.mustRun(t, "list")
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 2 {
			t.Fatalf("Expected 2 lines, got %d: %s", len(lines), output)
		}
		if !strings.HasPrefix(lines[0], "  'work' Jane Smith <jane@company.com>") {
			t.Errorf("Unexpected first line: %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "* 'personal'") || !strings.HasSuffix(lines[1], "(signed)") {
			t.Errorf("Unexpected second line: %q", lines[1])
		}
	})

	t.Run("ListJSON", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)
		env.seedProfiles(t, workProfile, personalProfile)

		output := env.mustRun(t, "list", "--output", "json")

		var got []map[string]interface{}
		if err := json.Unmarshal([]byte(output), &got); err != nil {
			t.Fatalf("Output is not JSON: %v\n%s", err, output)
		}
		if len(got) != 2 || got[0]["name"] != "work" || got[1]["signing_key"] != "ABC123" {
			t.Errorf("Unexpected JSON: %s", output)
		}
		if got[0]["current"] != false {
			t.Errorf("Expected current=false, got %v", got[0]["current"])
		}
	})

	t.Run("ListYAML", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)
		env.seedProfiles(t, workProfile)

		output := env.mustRun(t, "list", "-o", "yaml")

		var got []map[string]interface{}
		if err := yaml.Unmarshal([]byte(output), &got); err != nil {
			t.Fatalf("Output is not YAML: %v\n%s", err, output)
		}
		if len(got) != 1 || got[0]["user_name"] != "Jane Smith" {
			t.Errorf("Unexpected YAML: %s", output)
		}
	})

	t.Run("ListInvalidFormat", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)

		_, _, err := env.run(t, "list", "--output", "xml")
		if !errors.Is(err, gerrors.ErrInvalidFormat) {
			t.Errorf("Expected ErrInvalidFormat, got %v", err)
		}
	})
}

// TestRemoveCommand contains tests for the `gsw remove` command.
func TestRemoveCommand(t *testing.T) {
	t.Run("RemoveExisting", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)
		env.seedProfiles(t, workProfile, personalProfile)

		output := env.mustRun(t, "remove", "work")
		if !strings.Contains(output, "Removed profile 'work'") {
			t.Errorf("Expected remove message, got: %s", output)
		}
		if names := env.loadStore(t).Names(); len(names) != 1 || names[0] != "personal" {
			t.Errorf("Unexpected profiles left: %v", names)
		}
	})

	t.Run("RemoveCurrent", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)
		env.seedProfiles(t, workProfile)
		env.mustRun(t, "switch", "work")

		output := env.mustRun(t, "rm", "work")
		if !strings.Contains(output, "It was the global profile") {
			t.Errorf("Expected current profile hint, got: %s", output)
		}
		if env.loadStore(t).Current != "" {
			t.Error("Expected current profile to be cleared")
		}
	})

	t.Run("RemoveMissingIsNotAnError", func(t *testing.T) {
		env := setupTestEnvironment(t, testRepo)

		output := env.mustRun(t, "remove", "ghost")
		if !strings.Contains(output, "No profile named 'ghost'") {
			t.Errorf("Expected warning, got: %s", output)
		}
	})
}
