package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMoveFormat sets the move notation for output.
func (b *ConfigBuilder) WithMoveFormat(format MoveFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithStartFEN sets the starting position of every game.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Input.StartFEN = fen
	return b
}

// WithEncoding sets the input text encoding.
func (b *ConfigBuilder) WithEncoding(encoding string) *ConfigBuilder {
	b.cfg.Input.Encoding = encoding
	return b
}

// WithInteractive enables re-prompting after illegal moves.
func (b *ConfigBuilder) WithInteractive(enabled bool) *ConfigBuilder {
	b.cfg.Input.Interactive = enabled
	return b
}

// WithBoardDiagram enables the final text diagram.
func (b *ConfigBuilder) WithBoardDiagram(enabled bool) *ConfigBuilder {
	b.cfg.Output.DrawBoard = enabled
	return b
}

// WithMoveList enables listing the legal moves of the final position.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = enabled
	return b
}

// WithJSON switches output to JSON.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithDuplicates enables duplicate game reporting.
func (b *ConfigBuilder) WithDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Output.MarkDuplicates = enabled
	return b
}

// WithSVG sets the SVG diagram file.
func (b *ConfigBuilder) WithSVG(filename string) *ConfigBuilder {
	b.cfg.Output.SVGFile = filename
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
