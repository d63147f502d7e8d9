package models

// RepoInfo describes the repository a check runs against
type RepoInfo struct {
	// Path to the working tree root
	Path string
	// DisplayName is the directory name of the root
	DisplayName string
}

// NewRepoInfo creates a new RepoInfo
func NewRepoInfo(path, displayName string) RepoInfo {
	return RepoInfo{
		Path:        path,
		DisplayName: displayName,
	}
}
