package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("CPN_LOGIN_DELAY", "0")
	t.Setenv("CPN_TYPING_DELAY", "0")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRegisterThenWhoami(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home,
		"register",
		"--name", "Alice",
		"--email", "alice@example.com",
		"--password", "secret1",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bienvenue, Alice")

	stdout, _, err = executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Alice <alice@example.com>")
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Connecté en tant que bob")
}

func TestLoginShortPasswordFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Non connecté")
}

func TestLogoutForgetsProfile(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Déconnecté")

	stdout, _, err = executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Non connecté")
}

func TestIdeasRequireLogin(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "ideas", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestIdeasListShowsSeededBoard(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "ideas", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Favoris")
	assert.Contains(t, stdout, "routine matinale")
	assert.Contains(t, stdout, "respiration carrée")
}

func TestIdeasAdd(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "ideas", "add", "Marcher tous les jours")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Idée ajoutée")
}

func TestIdeasStarUsesIDPrefix(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	// The sample board seeds idea-2 unstarred.
	stdout, _, err := executeCLI(t, home, "ideas", "star", "idea-2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ajoutée aux favoris")
}

func TestMoodLog(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "mood", "log", "--score", "4", "--note", "belle journée")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Humeur enregistrée")
	assert.Contains(t, stdout, "Bien")
}

func TestMoodLogRejectsOutOfRangeScore(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "mood", "log", "--score", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mood score")
}

func TestJournalAddAndList(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Gratitude du matin")

	stdout, _, err = executeCLI(t, home,
		"journal", "add",
		"--title", "Essai",
		"--content", "Une pensée du soir",
		"--mood", "😌",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Entrée enregistrée : Essai")
}

func TestChatSendGetsCompanionReply(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "chat", "send", "Bonjour")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Vous : Bonjour")
	assert.Contains(t, stdout, "Compagnon : ")
}

func TestThemeSetAndGet(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Thème enregistré : dark")

	stdout, _, err = executeCLI(t, home, "theme")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dark")
}

func TestThemeSetRejectsUnknownValue(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "theme", "set", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestStatusJSONOutput(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "bob@example.com", "--password", "secret1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Counts\"")
	assert.Contains(t, stdout, "\"bob@example.com\"")
}
