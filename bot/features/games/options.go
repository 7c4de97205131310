package games

import (
	"pokerledger/bot/common"
	"pokerledger/domain/entities"
)

// settingsFromOptions overlays the stake options on defaults. It returns nil when
// no stake option was given so the configured defaults apply.
func settingsFromOptions(opts common.Options, defaults entities.GameSettings) *entities.GameSettings {
	patch := patchFromOptions(opts)
	patch.Name = nil
	if patch.IsEmpty() {
		return nil
	}

	settings := defaults
	if patch.StartingStack != nil {
		settings.StartingStack = *patch.StartingStack
	}
	if patch.SmallBlind != nil {
		settings.SmallBlind = *patch.SmallBlind
	}
	if patch.BigBlind != nil {
		settings.BigBlind = *patch.BigBlind
	}
	if patch.ChipToRuble != nil {
		settings.ChipToRuble = *patch.ChipToRuble
	}
	return &settings
}

func patchFromOptions(opts common.Options) entities.SettingsPatch {
	patch := entities.SettingsPatch{
		StartingStack: opts.IntPtr("starting_stack"),
		SmallBlind:    opts.IntPtr("small_blind"),
		BigBlind:      opts.IntPtr("big_blind"),
		ChipToRuble:   opts.FloatPtr("chip_to_ruble"),
	}
	if name := opts.String("name"); name != "" {
		patch.Name = &name
	}
	return patch
}
