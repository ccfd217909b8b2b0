package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jobPath := writeTempFile(t, "job.txt", "Backend role: Java and SQL.")

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --resume flag",
			args:        []string{"analyze", "--job", jobPath},
			errorString: "resume file is required",
		},
		{
			name: "Both --job and --job-url rejected",
			args: []string{
				"analyze",
				"--resume", jobPath,
				"--job", jobPath,
				"--job-url", "https://example.com/job",
			},
			errorString: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestAnalyzeCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	resumePath := writeTempFile(t, "resume.txt",
		"Software engineer with Java, Python and SQL experience building backend APIs.")
	jobPath := writeTempFile(t, "job.txt",
		"Backend developer role: Java, SQL, REST APIs, algorithms, Git workflow.")

	cmd := exec.Command(binaryPath, "analyze",
		"--resume", resumePath,
		"--job", jobPath,
		"--json",
	)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), `"score"`)
	assert.Contains(t, string(output), `"matched_skills"`)
}
