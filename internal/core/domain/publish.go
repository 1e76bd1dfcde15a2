package domain

type Post struct {
	Title           string
	Content         string
	CategoryID      int
	FeaturedMediaID int
}

type PublishStatus string

const (
	PublishPublished    PublishStatus = "published"
	PublishSavedLocally PublishStatus = "saved_locally"
	PublishFailed       PublishStatus = "failed"
)

// PublishResult is the outcome of a publish attempt. Callers branch on
// Status instead of inspecting the filesystem.
type PublishResult struct {
	Status    PublishStatus
	Link      string
	LocalPath string
	Err       error
}

type Media struct {
	ID  int    `json:"id"`
	URL string `json:"source_url"`
}

type Credentials struct {
	SiteURL     string
	Username    string
	AppPassword string
}

func (c Credentials) Complete() bool {
	return c.SiteURL != "" && c.Username != "" && c.AppPassword != ""
}
