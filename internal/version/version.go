package version

// Version is the released indelmap version.
const Version = "0.1.0"
