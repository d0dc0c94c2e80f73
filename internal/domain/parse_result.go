package domain

type ParseResult struct {
	SourceFile    string        // metadata file name, when exactly one was found
	MetadataFiles int           // metadata files seen in the folder, markers excluded
	Records       []*DeviceTest // filled in case of a success
	Error         error         // filled in case of an error
}
