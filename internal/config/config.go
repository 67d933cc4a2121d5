package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaFile string

// Default is the built-in configuration every file is overlaid on.
//
//go:embed default.yaml
var Default []byte

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFPS"`
}

// Scene controls obstacle generation.
type Scene struct {
	Seed         int64   `yaml:"seed"`
	Obstacles    int     `yaml:"obstacles"`
	Spread       float32 `yaml:"spread"`
	MinHeight    float32 `yaml:"minHeight"`
	MaxHeight    float32 `yaml:"maxHeight"`
	MinElevation float32 `yaml:"minElevation"`
	MaxElevation float32 `yaml:"maxElevation"`
	RoomSize     float32 `yaml:"roomSize"`
}

// Player holds the movement tuning. All rates are per frame, not per second.
type Player struct {
	Spawn             Vec3    `yaml:"spawn"`
	HalfExtent        Vec3    `yaml:"halfExtent"`
	HorizontalDamping float32 `yaml:"horizontalDamping"`
	Gravity           float32 `yaml:"gravity"`
	TerminalVelocity  float32 `yaml:"terminalVelocity"`
	JumpImpulse       float32 `yaml:"jumpImpulse"`
	Thrust            float32 `yaml:"thrust"`
	SprintMultiplier  float32 `yaml:"sprintMultiplier"`
	FloorY            float32 `yaml:"floorY"`
	CollisionDamping  float32 `yaml:"collisionDamping"`
}

type Camera struct {
	LookSensitivity float32 `yaml:"lookSensitivity"`
	ZoomSpeed       float32 `yaml:"zoomSpeed"`
}

type Console struct {
	MaxLine     int    `yaml:"maxLine"`
	History     int    `yaml:"history"`
	BlinkFrames uint32 `yaml:"blinkFrames"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Scene   Scene   `yaml:"scene"`
	Player  Player  `yaml:"player"`
	Camera  Camera  `yaml:"camera"`
	Console Console `yaml:"console"`
}

// Vec3 is a vector written as a three element YAML sequence.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var values []float32
	if err := node.Decode(&values); err != nil {
		return err
	}
	if len(values) != 3 {
		return fmt.Errorf("line %d: expected 3 components, got %d", node.Line, len(values))
	}
	copy(v[:], values)
	return nil
}

func (v Vec3) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: fmt.Sprintf("%g", c),
		})
	}
	return node, nil
}

func decode(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Process parses the embedded defaults and overlays each file in order.
func Process(paths []string) (*Config, error) {
	cfg := &Config{}
	if err := decode(Default, cfg); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the merged configuration against the embedded schema.
func (c *Config) Validate() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaFile)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	file, err := cueyaml.Extract("<config>", data)
	if err != nil {
		return err
	}
	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return err
	}

	return schema.Unify(value).Validate(cue.Concrete(true))
}
