package common

import (
	"github.com/bwmarrin/discordgo"
)

// Options indexes the options of a subcommand by name
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// SubcommandOptions returns the name and options of the invoked subcommand
func SubcommandOptions(i *discordgo.InteractionCreate) (string, Options) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return "", Options{}
	}
	sub := data.Options[0]
	return sub.Name, NewOptions(sub.Options)
}

// NewOptions indexes options by name
func NewOptions(options []*discordgo.ApplicationCommandInteractionDataOption) Options {
	opts := make(Options, len(options))
	for _, opt := range options {
		opts[opt.Name] = opt
	}
	return opts
}

// String returns a string option, "" if absent
func (o Options) String(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// Int returns an integer option and whether it was given
func (o Options) Int(name string) (int64, bool) {
	if opt, ok := o[name]; ok {
		return opt.IntValue(), true
	}
	return 0, false
}

// IntPtr returns an integer option as a pointer, nil if absent
func (o Options) IntPtr(name string) *int64 {
	if v, ok := o.Int(name); ok {
		return &v
	}
	return nil
}

// FloatPtr returns a number option as a pointer, nil if absent
func (o Options) FloatPtr(name string) *float64 {
	if opt, ok := o[name]; ok {
		v := opt.FloatValue()
		return &v
	}
	return nil
}
