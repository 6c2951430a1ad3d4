package git

import (
	"bufio"
	"bytes"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// credential chain: each candidate is tried in order; an authentication
// failure advances to the next, any other outcome is final. A nil method
// means anonymous.
func credentialCandidates(remoteURL string) []transport.AuthMethod {
	if isLocalPath(remoteURL) {
		return []transport.AuthMethod{nil}
	}
	if isHTTPURL(remoteURL) {
		var candidates []transport.AuthMethod
		if auth := helperAuth(remoteURL); auth != nil {
			candidates = append(candidates, auth)
		}
		return append(candidates, nil)
	}
	var candidates []transport.AuthMethod
	if auth, err := gitssh.NewSSHAgentAuth(sshUser(remoteURL)); err == nil {
		candidates = append(candidates, auth)
	}
	home, err := os.UserHomeDir()
	if err == nil {
		for _, name := range []string{"id_ed25519", "id_rsa"} {
			path := filepath.Join(home, ".ssh", name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if auth, err := gitssh.NewPublicKeysFromFile(sshUser(remoteURL), path, ""); err == nil {
				candidates = append(candidates, auth)
			}
		}
	}
	return append(candidates, nil)
}

func isHTTPURL(remoteURL string) bool {
	return strings.HasPrefix(remoteURL, "http://") || strings.HasPrefix(remoteURL, "https://")
}

func isLocalPath(remoteURL string) bool {
	return strings.HasPrefix(remoteURL, "/") ||
		strings.HasPrefix(remoteURL, "./") ||
		strings.HasPrefix(remoteURL, "../") ||
		strings.HasPrefix(remoteURL, "file://")
}

func sshUser(remoteURL string) string {
	rest := remoteURL
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	if idx := strings.Index(rest, "@"); idx > 0 && !strings.Contains(rest[:idx], "/") {
		return rest[:idx]
	}
	return "git"
}

// helperAuth asks the configured git credential helpers for the remote.
func helperAuth(remoteURL string) transport.AuthMethod {
	parsed, err := url.Parse(remoteURL)
	if err != nil || parsed.Host == "" {
		return nil
	}
	var input bytes.Buffer
	input.WriteString("protocol=" + strings.TrimSuffix(parsed.Scheme, ":") + "\n")
	input.WriteString("host=" + parsed.Host + "\n\n")

	cmd := exec.Command("git", "credential", "fill")
	cmd.Stdin = &input
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	var username, password string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "username="); ok {
			username = value
		}
		if value, ok := strings.CutPrefix(line, "password="); ok {
			password = value
		}
	}
	if username == "" && password == "" {
		return nil
	}
	return &githttp.BasicAuth{Username: username, Password: password}
}
