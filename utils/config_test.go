package utils

import (
	"os"
	"path/filepath"

	. "gopkg.in/check.v1"
)

type ConfigSuite struct {
	config ConfigStructure
}

var _ = Suite(&ConfigSuite{})

const configFile = `// kgtool configuration
{
  "rootDir": "/opt/kgtool/",
  "databaseOpenAttempts": 33,
  "decodeConcurrency": 33,
  "itemKey": 165,
}`

const configFileYAML = `root_dir: /opt/kgtool/
database_open_attempts: 33
decode_concurrency: 33
item_key: 165
`

func (s *ConfigSuite) SetUpTest(c *C) {
	s.config = ConfigStructure{}
}

func (s *ConfigSuite) TestLoadConfig(c *C) {
	configname := filepath.Join(c.MkDir(), "kgtool.json")
	f, _ := os.Create(configname)
	f.WriteString(configFile)
	f.Close()

	err := LoadConfig(configname, &s.config)
	c.Assert(err, IsNil)
	c.Check(s.config.GetRootDir(), Equals, "/opt/kgtool/")
	c.Check(s.config.DatabaseOpenAttempts, Equals, 33)
	c.Check(s.config.DecodeConcurrency, Equals, 33)
	c.Check(s.config.ItemKey, Equals, 0xa5)
}

func (s *ConfigSuite) TestLoadConfigYAML(c *C) {
	configname := filepath.Join(c.MkDir(), "kgtool.yaml")
	f, _ := os.Create(configname)
	f.WriteString(configFileYAML)
	f.Close()

	err := LoadConfig(configname, &s.config)
	c.Assert(err, IsNil)
	c.Check(s.config.GetRootDir(), Equals, "/opt/kgtool/")
	c.Check(s.config.DatabaseOpenAttempts, Equals, 33)
	c.Check(s.config.DecodeConcurrency, Equals, 33)
	c.Check(s.config.ItemKey, Equals, 0xa5)
}

func (s *ConfigSuite) TestLoadConfigInvalid(c *C) {
	configname := filepath.Join(c.MkDir(), "kgtool.json")
	f, _ := os.Create(configname)
	f.WriteString("{invalid")
	f.Close()

	err := LoadConfig(configname, &s.config)
	c.Assert(err, NotNil)
	c.Check(err, ErrorMatches, "invalid yaml .*")
}

func (s *ConfigSuite) TestLoadConfigMissing(c *C) {
	err := LoadConfig(filepath.Join(c.MkDir(), "nosuch.json"), &s.config)
	c.Assert(err, NotNil)
}

func (s *ConfigSuite) TestSaveConfig(c *C) {
	configname := filepath.Join(c.MkDir(), "kgtool.json")

	s.config.RootDir = "/tmp/kgtool"
	s.config.LogLevel = "info"
	s.config.LogFormat = "json"
	s.config.DatabaseOpenAttempts = 5
	s.config.DatabaseBackend = DBConfig{Type: "leveldb"}
	s.config.OutputDirectory = "out"
	s.config.DecodeConcurrency = 3
	s.config.IndexExtension = ".idx"
	s.config.DataExtension = ".dat"
	s.config.ItemKey = 0x5a

	err := SaveConfig(configname, &s.config)
	c.Assert(err, IsNil)

	f, _ := os.Open(configname)
	defer f.Close()

	st, _ := f.Stat()
	buf := make([]byte, st.Size())
	f.Read(buf)

	c.Check(string(buf), Equals, ""+
		"{\n"+
		"  \"rootDir\": \"/tmp/kgtool\",\n"+
		"  \"logLevel\": \"info\",\n"+
		"  \"logFormat\": \"json\",\n"+
		"  \"databaseOpenAttempts\": 5,\n"+
		"  \"databaseBackend\": {\n"+
		"    \"type\": \"leveldb\",\n"+
		"    \"dbPath\": \"\"\n"+
		"  },\n"+
		"  \"outputDirectory\": \"out\",\n"+
		"  \"decodeConcurrency\": 3,\n"+
		"  \"indexExtension\": \".idx\",\n"+
		"  \"dataExtension\": \".dat\",\n"+
		"  \"itemKey\": 90\n"+
		"}")
}

func (s *ConfigSuite) TestSaveConfigYAML(c *C) {
	configname := filepath.Join(c.MkDir(), "kgtool.yaml")

	s.config.RootDir = "/tmp/kgtool"
	s.config.DecodeConcurrency = 7
	s.config.ItemKey = 0x11

	err := SaveConfigYAML(configname, &s.config)
	c.Assert(err, IsNil)

	var loaded ConfigStructure
	err = LoadConfig(configname, &loaded)
	c.Assert(err, IsNil)
	c.Check(loaded.RootDir, Equals, "/tmp/kgtool")
	c.Check(loaded.DecodeConcurrency, Equals, 7)
	c.Check(loaded.ItemKey, Equals, 0x11)
}

func (s *ConfigSuite) TestGetRootDir(c *C) {
	s.config.RootDir = "~/.kgtool"
	c.Check(s.config.GetRootDir(), Equals, os.Getenv("HOME")+"/.kgtool")
}
