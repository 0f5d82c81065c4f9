package subsonic

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindInt
	kindUint
	kindFloat
	kindMillis
	kindTime
	kindList
	kindRecord
	kindPointer
	kindRaw
)

var (
	millisType = reflect.TypeOf(Millis(0))
	timeType   = reflect.TypeOf(time.Time{})
)

// codec says how one Go type is filled from a document token.
type codec struct {
	kind   fieldKind
	typ    reflect.Type
	elem   *codec
	record *schema
}

func (c *codec) scalar() bool {
	switch c.kind {
	case kindList, kindRecord, kindPointer, kindRaw:
		return false
	}
	return true
}

type field struct {
	name  string
	wire  string
	keys  []string
	index []int
	codec *codec
}

// schema is the field table of one record type. Tables are built before use
// and never change afterwards.
type schema struct {
	typ    reflect.Type
	fields []field
}

// shapes holds the tables of every response shape the client decodes, plus
// every record reachable from them.
var shapes = registerShapes(
	header{},
	Envelope{},
	PingResponse{},
	LicenseResponse{},
	OpenSubsonicExtensionsResponse{},
	MusicFoldersResponse{},
	IndexesResponse{},
	DirectoryResponse{},
	GenresResponse{},
	ArtistsResponse{},
	ArtistResponse{},
	AlbumResponse{},
	SongResponse{},
	VideosResponse{},
	ArtistInfoResponse{},
	ArtistInfo2Response{},
	AlbumInfoResponse{},
	SimilarSongsResponse{},
	SimilarSongs2Response{},
	TopSongsResponse{},
	AlbumListResponse{},
	AlbumList2Response{},
	RandomSongsResponse{},
	SongsByGenreResponse{},
	NowPlayingResponse{},
	StarredResponse{},
	Starred2Response{},
	SearchResult2Response{},
	SearchResult3Response{},
	PlaylistsResponse{},
	PlaylistResponse{},
	LyricsResponse{},
	LyricsListResponse{},
	BookmarksResponse{},
	PlayQueueResponse{},
	SharesResponse{},
	JukeboxStatusResponse{},
	JukeboxPlaylistResponse{},
	PodcastsResponse{},
	NewestPodcastsResponse{},
	InternetRadioStationsResponse{},
	ChatMessagesResponse{},
	UserResponse{},
	UsersResponse{},
	ScanStatusResponse{},
)

func registerShapes(samples ...any) map[reflect.Type]*schema {
	b := newSchemaBuilder()
	for _, sample := range samples {
		if _, err := b.schemaOf(reflect.TypeOf(sample)); err != nil {
			panic(err)
		}
	}
	return b.built
}

// lookupSchema returns the registered table for t, or a private table built
// for this call when t was never registered.
func lookupSchema(t reflect.Type) (*schema, error) {
	if s, ok := shapes[t]; ok {
		return s, nil
	}
	return newSchemaBuilder().schemaOf(t)
}

type schemaBuilder struct {
	fold  cases.Caser
	built map[reflect.Type]*schema
}

func newSchemaBuilder() *schemaBuilder {
	return &schemaBuilder{
		fold:  cases.Fold(),
		built: make(map[reflect.Type]*schema),
	}
}

func (b *schemaBuilder) schemaOf(t reflect.Type) (*schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("subsonic: response shape %s is not a struct", t)
	}
	if s, ok := b.built[t]; ok {
		return s, nil
	}
	s := &schema{typ: t}
	b.built[t] = s
	if err := b.collect(s, t, nil); err != nil {
		delete(b.built, t)
		return nil, err
	}
	return s, nil
}

// collect appends the fields of t to s. Anonymous struct fields without a
// json name are flattened into the outer record.
func (b *schemaBuilder) collect(s *schema, t reflect.Type, prefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		index := make([]int, len(prefix)+1)
		copy(index, prefix)
		index[len(prefix)] = i

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct && sf.Type != timeType {
			if err := b.collect(s, sf.Type, index); err != nil {
				return err
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}

		c, err := b.codecOf(sf.Type)
		if err != nil {
			return fmt.Errorf("subsonic: %s.%s: %w", t, sf.Name, err)
		}
		if name == "" {
			name = sf.Name
		}
		keys := []string{foldKey(b.fold, name)}
		if alias := foldKey(b.fold, sf.Name); alias != keys[0] {
			keys = append(keys, alias)
		}
		s.fields = append(s.fields, field{
			name:  sf.Name,
			wire:  name,
			keys:  keys,
			index: index,
			codec: c,
		})
	}
	return nil
}

func (b *schemaBuilder) codecOf(t reflect.Type) (*codec, error) {
	switch t {
	case millisType:
		return &codec{kind: kindMillis, typ: t}, nil
	case timeType:
		return &codec{kind: kindTime, typ: t}, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return &codec{kind: kindBool, typ: t}, nil
	case reflect.String:
		return &codec{kind: kindString, typ: t}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &codec{kind: kindInt, typ: t}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &codec{kind: kindUint, typ: t}, nil
	case reflect.Float32, reflect.Float64:
		return &codec{kind: kindFloat, typ: t}, nil
	case reflect.Slice:
		elem, err := b.codecOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &codec{kind: kindList, typ: t, elem: elem}, nil
	case reflect.Pointer:
		elem, err := b.codecOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &codec{kind: kindPointer, typ: t, elem: elem}, nil
	case reflect.Struct:
		s, err := b.schemaOf(t)
		if err != nil {
			return nil, err
		}
		return &codec{kind: kindRecord, typ: t, record: s}, nil
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return &codec{kind: kindRaw, typ: t}, nil
		}
	}
	return nil, fmt.Errorf("unsupported field type %s", t)
}

// foldKey maps a wire key or Go field name onto a convention-free match key:
// "song_count", "song-count", "songCount" and "SongCount" are all equal.
func foldKey(c cases.Caser, s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return -1
		}
		return r
	}, s)
	return c.String(s)
}
