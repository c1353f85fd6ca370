package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/mcncl/xml2object/internal/errors"
)

// Parse reads an XML document from an io.Reader and returns its root element.
// The returned element is the entry point expected by the transcoder.
func Parse(reader io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(reader); err != nil {
		return nil, errors.NewParsingError(
			fmt.Sprintf("failed to parse XML document: %v", err),
			errors.ErrInvalidXML,
		)
	}

	root := doc.Root()
	if root == nil {
		// A document of comments, processing instructions or whitespace
		// parses cleanly but has nothing to transcode.
		return nil, errors.NewParsingError("document has no root element", errors.ErrNoRootElement)
	}

	return root, nil
}

// ParseString parses an XML document from a string
func ParseString(xmlString string) (*etree.Element, error) {
	if strings.TrimSpace(xmlString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(xmlString)
	return Parse(reader)
}

// ParseFile parses an XML document from a file path
func ParseFile(filePath string) (*etree.Element, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
