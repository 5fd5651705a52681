package gallery

// Materializer turns inline image payloads into files the photo library
// can ingest
type Materializer interface {
	WriteTemp(data []byte, ext string) (string, error)
}

// PhotoLibrary is the external media library the gallery exports into
type PhotoLibrary interface {
	SaveToAlbum(album, srcPath string) error
}
