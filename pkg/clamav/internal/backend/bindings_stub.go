//go:build !cgo || windows

package backend

// Stub implementations for non-CGO builds or Windows.
// Callers are expected to check Built and surface ErrNotBuilt first; if they
// get here anyway, allocations return nil and every result code is CL_EARG so
// nothing reports success by accident.

const notBuilt int32 = 3

func Init(uint32) int32 { return notBuilt }

func EngineNew() Engine { return nil }

func EngineFree(Engine) int32 { return notBuilt }

func EngineAddref(Engine) int32 { return notBuilt }

func EngineCompile(Engine) int32 { return notBuilt }

func EngineSetNum(Engine, uint32, int64) int32 { return notBuilt }

func EngineGetNum(Engine, uint32) (int64, int32) { return 0, notBuilt }

func EngineSetStr(Engine, uint32, string) int32 { return notBuilt }

func EngineGetStr(Engine, uint32) (string, bool, int32) { return "", false, notBuilt }

func SettingsCopy(Engine) Settings { return nil }

func SettingsApply(Engine, Settings) int32 { return notBuilt }

func SettingsFree(Settings) int32 { return notBuilt }

func Load(string, Engine, uint32) (uint32, int32) { return 0, notBuilt }

func SetPreScan(Engine, bool) {}

func SetPostScan(Engine, bool) {}

func SetSigLoad(Engine, uintptr, bool) {}

func SetHash(Engine, bool) {}

func SetMessageHandler(fn MessageFunc) { storeMessageHandler(fn) }

func ScanFile(string, Engine, uint32, uintptr) (string, uint64, int32) { return "", 0, notBuilt }

func ScanDesc(int, Engine, uint32, uintptr) (string, uint64, int32) { return "", 0, notBuilt }

func RetDBDir() string { return "" }

func CVDHead(string) (*CVD, bool) { return nil, false }

func CVDParse(string) (*CVD, bool) { return nil, false }

func CVDVerify(string) int32 { return notBuilt }

func StatIniDir(string) (Stat, int32) { return nil, notBuilt }

func StatChkDir(Stat) int32 { return notBuilt }

func StatFree(Stat) int32 { return notBuilt }

func CountSigs(string, uint32) (uint32, int32) { return 0, notBuilt }

func Debug() {}

func RetFLevel() uint32 { return 0 }

func RetVer() string { return "" }

func StrError(int32) string { return "" }
