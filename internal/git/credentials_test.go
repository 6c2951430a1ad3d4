package git

import "testing"

func TestSSHUser(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"git@github.com:owner/repo.git", "git"},
		{"ssh://deploy@host.example/repo.git", "deploy"},
		{"ssh://host.example/repo.git", "git"},
		{"/srv/git/repo.git", "git"},
	}
	for _, tc := range cases {
		if got := sshUser(tc.url); got != tc.want {
			t.Fatalf("sshUser(%q): expected %q, got %q", tc.url, tc.want, got)
		}
	}
}

func TestIsHTTPURL(t *testing.T) {
	if !isHTTPURL("https://github.com/owner/repo.git") {
		t.Fatalf("https URL not recognized")
	}
	if isHTTPURL("git@github.com:owner/repo.git") {
		t.Fatalf("scp-style URL misclassified")
	}
}

func TestCredentialChainEndsAnonymous(t *testing.T) {
	candidates := credentialCandidates("https://example.com/repo.git")
	if len(candidates) == 0 {
		t.Fatalf("expected at least the anonymous candidate")
	}
	if candidates[len(candidates)-1] != nil {
		t.Fatalf("expected chain to end with anonymous access")
	}
}
