package config

import (
	"context"
	_ "embed"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/diillson/projection-dashboard-go/internal/domain/repository"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
	"github.com/goccy/go-json"
	hjson "github.com/hjson/hjson-go/v4"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

//go:embed sample/business_plan.yaml
var samplePayload []byte

// SampleSource é o nome exibido quando nenhum payload é informado.
const SampleSource = "bundled sample"

// ProjectionRepositoryImpl implementa o ProjectionRepository.
type ProjectionRepositoryImpl struct {
	objects repository.ObjectStore
}

// NewProjectionRepository cria o repositório de projeções. objects pode ser
// nil; nesse caso fontes s3:// retornam ErrObjectStoreMissing.
func NewProjectionRepository(objects repository.ObjectStore) repository.ProjectionRepository {
	return &ProjectionRepositoryImpl{objects: objects}
}

// Load carrega e decodifica o payload indicado por source.
func (r *ProjectionRepositoryImpl) Load(ctx context.Context, source string) (entity.ProjectionDocument, error) {
	var (
		data []byte
		ext  string
		err  error
	)

	switch {
	case source == "":
		data, ext = samplePayload, ".yaml"
	case strings.HasPrefix(source, "s3://"):
		if r.objects == nil {
			return entity.ProjectionDocument{}, types.ErrObjectStoreMissing
		}
		data, err = r.objects.Get(ctx, source)
		if err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error fetching projection payload %s: %w", source, err)
		}
		ext = path.Ext(source)
	default:
		data, err = readRegularFile(source, "projection")
		if err != nil {
			return entity.ProjectionDocument{}, err
		}
		ext = filepath.Ext(source)
	}

	doc, err := DecodeProjections(data, ext)
	if err != nil {
		return entity.ProjectionDocument{}, fmt.Errorf("error decoding %s: %w", sourceName(source), err)
	}
	return doc, nil
}

// DecodeProjections decodifica um payload conforme a extensão (.toml, .yaml,
// .yml, .json ou .hjson).
func DecodeProjections(data []byte, ext string) (entity.ProjectionDocument, error) {
	var doc projectionDocument

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error parsing YAML payload: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error parsing JSON payload: %w", err)
		}
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error parsing TOML payload: %w", err)
		}
		if err := viaJSON(tree.ToMap(), &doc); err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error mapping TOML payload: %w", err)
		}
	case ".hjson":
		var raw interface{}
		if err := hjson.Unmarshal(data, &raw); err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error parsing HJSON payload: %w", err)
		}
		if err := viaJSON(raw, &doc); err != nil {
			return entity.ProjectionDocument{}, fmt.Errorf("error mapping HJSON payload: %w", err)
		}
	default:
		return entity.ProjectionDocument{}, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}

	if len(doc.Periods) == 0 {
		return entity.ProjectionDocument{}, types.ErrNoPeriods
	}
	return doc.toEntity(), nil
}

// viaJSON converte a árvore genérica de TOML/HJSON para o documento tipado,
// o que também normaliza inteiros e floats.
func viaJSON(raw interface{}, out *projectionDocument) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func sourceName(source string) string {
	if source == "" {
		return SampleSource
	}
	return source
}
