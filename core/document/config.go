package document

// Config holds configuration for the document store.
type Config struct {
	// Driver selects the backing medium (file or s3).
	Driver string `mapstructure:"driver" default:"file"`
	// Path is the root directory for the file driver.
	Path string `mapstructure:"path" default:"./data"`
}
