package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/abljoel/youtube-comments-analysis/sentiment"
)

// rawColumns is the required header of the ingestion boundary. A leading
// unnamed index column is tolerated (some tabular writers emit one).
var rawColumns = []string{"author", "published_at", "updated_at", "likes", "text"}

// derivedColumns are appended to the raw columns in the annotated corpus,
// in this exact order for downstream compatibility.
var derivedColumns = []string{
	"cleaned_text", "filtered_text", "lemmatized_text",
	"has_emojis", "has_emoticons", "sent_class", "sent_score",
}

// ReadRaw reads a raw comment CSV. A missing or misnamed column is a
// contract violation and fails the whole read.
func ReadRaw(r io.Reader) ([]RawComment, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("corpus: empty input, missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("corpus: reading header: %w", err)
	}

	offset, err := checkHeader(header, rawColumns)
	if err != nil {
		return nil, err
	}

	var rows []RawComment
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		rc, err := parseRaw(record[offset:])
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		rows = append(rows, rc)
	}
	return rows, nil
}

// ReadAnnotated reads an annotated corpus CSV written by WriteAnnotated.
func ReadAnnotated(r io.Reader) ([]AnnotatedComment, error) {
	want := append(append([]string{}, rawColumns...), derivedColumns...)

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("corpus: empty input, missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("corpus: reading header: %w", err)
	}

	offset, err := checkHeader(header, want)
	if err != nil {
		return nil, err
	}

	var rows []AnnotatedComment
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		ac, err := parseAnnotated(record[offset:])
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		rows = append(rows, ac)
	}
	return rows, nil
}

// WriteRaw writes rows as a raw comment CSV with header.
func WriteRaw(w io.Writer, rows []RawComment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rawColumns); err != nil {
		return fmt.Errorf("corpus: writing header: %w", err)
	}
	for _, rc := range rows {
		record := []string{
			rc.Author, rc.PublishedAt, rc.UpdatedAt,
			strconv.Itoa(rc.Likes), rc.Text,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("corpus: writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAnnotated writes the annotated corpus with the derived columns
// appended after the raw ones.
func WriteAnnotated(w io.Writer, rows []AnnotatedComment) error {
	header := append(append([]string{}, rawColumns...), derivedColumns...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("corpus: writing header: %w", err)
	}
	for _, ac := range rows {
		record := []string{
			ac.Author, ac.PublishedAt, ac.UpdatedAt,
			strconv.Itoa(ac.Likes), ac.Text,
			ac.CleanedText, ac.FilteredText, ac.LemmatizedText,
			strconv.Itoa(ac.HasEmojis), strconv.Itoa(ac.HasEmoticons),
			ac.SentClass.String(),
			strconv.FormatFloat(ac.SentScore, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("corpus: writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// checkHeader validates the column names and returns the data offset:
// 0 normally, 1 when a leading unnamed index column is present.
func checkHeader(header, want []string) (int, error) {
	offset := 0
	if len(header) > 0 && header[0] == "" {
		offset = 1
	}
	if len(header)-offset != len(want) {
		return 0, fmt.Errorf("corpus: header has %d columns, want %d", len(header)-offset, len(want))
	}
	for i, name := range want {
		if header[offset+i] != name {
			return 0, fmt.Errorf("corpus: column %d is %q, want %q", i+1, header[offset+i], name)
		}
	}
	return offset, nil
}

func parseRaw(record []string) (RawComment, error) {
	likes, err := strconv.Atoi(record[3])
	if err != nil {
		return RawComment{}, fmt.Errorf("likes %q: %w", record[3], err)
	}
	if likes < 0 {
		return RawComment{}, fmt.Errorf("likes %d is negative", likes)
	}
	return RawComment{
		Author:      record[0],
		PublishedAt: record[1],
		UpdatedAt:   record[2],
		Likes:       likes,
		Text:        record[4],
	}, nil
}

func parseAnnotated(record []string) (AnnotatedComment, error) {
	rc, err := parseRaw(record[:5])
	if err != nil {
		return AnnotatedComment{}, err
	}
	hasEmojis, err := parseFlag(record[8])
	if err != nil {
		return AnnotatedComment{}, fmt.Errorf("has_emojis: %w", err)
	}
	hasEmoticons, err := parseFlag(record[9])
	if err != nil {
		return AnnotatedComment{}, fmt.Errorf("has_emoticons: %w", err)
	}
	class, err := sentiment.ParseClass(record[10])
	if err != nil {
		return AnnotatedComment{}, err
	}
	score, err := strconv.ParseFloat(record[11], 64)
	if err != nil {
		return AnnotatedComment{}, fmt.Errorf("sent_score %q: %w", record[11], err)
	}
	return AnnotatedComment{
		RawComment:     rc,
		CleanedText:    record[5],
		FilteredText:   record[6],
		LemmatizedText: record[7],
		HasEmojis:      hasEmojis,
		HasEmoticons:   hasEmoticons,
		SentClass:      class,
		SentScore:      score,
	}, nil
}

func parseFlag(s string) (int, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	}
	return 0, fmt.Errorf("flag %q is not 0 or 1", s)
}
