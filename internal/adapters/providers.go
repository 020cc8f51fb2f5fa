package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/xform/internal/adapters/fs"
	"github.com/trebuchet-org/xform/internal/adapters/interactive"
	"github.com/trebuchet-org/xform/internal/adapters/progress"
	"github.com/trebuchet-org/xform/internal/config"
	"github.com/trebuchet-org/xform/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewSourceListerAdapter,
	wire.Bind(new(usecase.SourceFileLister), new(*fs.SourceListerAdapter)),
)

// LocalConfigSet provides the local defaults store. It only needs the data
// directory so it can be built without a loadable transform config.
var LocalConfigSet = wire.NewSet(
	fs.NewLocalConfigStoreAt,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideResolver,
	wire.Bind(new(usecase.ConfigResolver), new(*config.Resolver)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.FileSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides progress reporting for batch commands
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ConfigSet,
	InteractiveSet,
	ProgressSet,
)
