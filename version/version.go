package version

// AppVersion is overridden at build time with
// -ldflags "-X proxyctl/version.AppVersion=...".
var AppVersion = "1.0.0"
