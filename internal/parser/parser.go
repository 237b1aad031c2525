package parser

import (
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/term"

	"github.com/mcncl/jsonsketch/internal/errors" // Custom errors package
	"github.com/mcncl/jsonsketch/internal/models"
)

// StdinPath is the --file value that selects standard input.
const StdinPath = "-"

// Parse converts JSON data from an io.Reader into an IntermediateRepresentation.
// Object keys keep their document order; a repeated key keeps its first position
// and its last value.
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	dec := jsontext.NewDecoder(reader, jsontext.AllowDuplicateNames(true))

	rootValue, err := decodeValue(dec)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.IntermediateRepresentation{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return models.IntermediateRepresentation{}, syntaxError(dec, err)
	}

	// Anything other than EOF after the first value means trailing data.
	if _, err := dec.ReadToken(); err == nil {
		return models.IntermediateRepresentation{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return models.IntermediateRepresentation{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	_, isArray := rootValue.(models.JSONArray)
	return models.IntermediateRepresentation{
		Root:        rootValue,
		RootIsArray: isArray,
	}, nil
}

func syntaxError(dec *jsontext.Decoder, err error) error {
	if stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	return errors.NewParsingError(
		fmt.Sprintf("JSON syntax error at offset %d: %v", dec.InputOffset(), err),
		errors.ErrInvalidJSON,
	)
}

func decodeValue(dec *jsontext.Decoder) (models.JSONValue, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case '{':
		obj := models.NewJSONObject()
		for {
			kind, err := peek(dec)
			if err != nil {
				return nil, err
			}
			if kind == '}' {
				break
			}
			// The token is only valid until the next decoder call.
			nameTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			name := nameTok.String()
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(name, value)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := models.JSONArray{}
		for {
			kind, err := peek(dec)
			if err != nil {
				return nil, err
			}
			if kind == ']' {
				break
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '"':
		return tok.String(), nil
	case '0':
		return models.Number(tok.String()), nil
	case 't', 'f':
		return tok.Bool(), nil
	case 'n':
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok.Kind())
	}
}

// peek returns the kind of the next token, surfacing the decoder error when
// there is none.
func peek(dec *jsontext.Decoder) (jsontext.Kind, error) {
	kind := dec.PeekKind()
	if kind != 0 {
		return kind, nil
	}
	if _, err := dec.ReadToken(); err != nil {
		if stderrors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return 0, io.ErrUnexpectedEOF
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseStdin parses JSON piped to stdin. An interactive terminal with nothing
// piped in is reported as missing input rather than blocking on a read.
func ParseStdin(stdin *os.File) (models.IntermediateRepresentation, error) {
	if term.IsTerminal(int(stdin.Fd())) {
		return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return ParseString(string(data))
}

// ParseFile parses JSON from a file path; StdinPath reads standard input.
func ParseFile(filePath string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	if filePath == StdinPath {
		return ParseStdin(os.Stdin)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.IntermediateRepresentation{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			fmt.Errorf("%w: %v", errors.ErrFileUnreadable, err),
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			fmt.Errorf("%w: %v", errors.ErrFileUnreadable, err),
		)
	}
	if stat.IsDir() {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("'%s' is a directory", filePath),
			errors.ErrFileUnreadable,
		)
	}
	if stat.Size() == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
