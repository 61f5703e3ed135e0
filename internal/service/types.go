package service

import "github.com/mkuran/wordseal/internal/core"

type IssueResponse struct {
	// Artifact is the issued code with its key id and expiry.
	Artifact *core.CodeArtifact
}

type ValidateRequest struct {
	// Words is the presented code: 10 whitespace-separated dictionary
	// words.
	Words string
}

type ValidateResponse struct {
	// Verdict is the validation outcome.
	Verdict core.Verdict
}
