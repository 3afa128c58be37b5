package item

// --- Item Domain Model ---

// Item is a master data barang record. Records are create-only: once
// inserted they are never updated or deleted by this service.
type Item struct {
	ID          string
	Name        string
	Category    string
	Condition   string
	Price       float64
	Description string
	ImageURL    string
}

// --- UseCase Inputs ---

// CreateItemInput carries the parsed multipart form: the metadata fields plus
// the uploaded image content read fully into memory.
type CreateItemInput struct {
	Name        string
	Category    string
	Condition   string
	Price       float64
	Description string

	ImageFilename string
	ImageContent  []byte
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}
