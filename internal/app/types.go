package app

type BuildRequest struct {
	ArtifactPaths []string
	PatchPaths    []string
	Output        string
}

type BuildResult struct {
	OutputPath string
	NodeCount  int
	MacroCount int
	DocCount   int
}

type ValidateRequest struct {
	ManifestPath string
}

type ValidateResult struct {
	NodeCount  int
	MacroCount int
	DocCount   int
}

type InspectRequest struct {
	ManifestPath string
}

type InspectResult struct {
	NodeCount  int
	MacroCount int
	DocCount   int
	EdgeCount  int
	Roots      []string
	Leaves     []string
}

type ResolveRequest struct {
	ManifestPath string
	Kind         string
	Name         string
	Package      string
	Adapter      string
}

type ResolveResult struct {
	Found        bool
	UniqueID     string
	PackageName  string
	ResourceType string
}
