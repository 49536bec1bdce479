package ports

import "fmt"

// ProvisioningError means an engine binary or model is unavailable. Fetching
// them is the provisioner's job; the pipeline only surfaces the gap.
type ProvisioningError struct {
	Component string
	Path      string
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("%s not available at %s (run provisioning first)", e.Component, e.Path)
}

// TranscriptionError means the speech engine exited non-zero. Hint carries a
// remediation note for known crash signatures.
type TranscriptionError struct {
	Err    error
	Output string
	Hint   string
}

func (e *TranscriptionError) Error() string {
	msg := fmt.Sprintf("speech engine failed: %v", e.Err)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// MissingArtifactError means an expected transcript artifact is absent even
// after the fallback search.
type MissingArtifactError struct {
	Artifact string
	Dir      string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("expected %s artifact not found in %s", e.Artifact, e.Dir)
}

// EncodingError means the encoder engine exited non-zero.
type EncodingError struct {
	Err    error
	Detail string
}

func (e *EncodingError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("encoding failed: %v: %s", e.Err, e.Detail)
	}
	return fmt.Sprintf("encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
