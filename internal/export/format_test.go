package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaultpass/accountgen/internal/model"
)

var twoItems = []model.GeneratedItem{
	{ID: "1", Username: "a", Password: "b"},
	{ID: "2", Username: "c", Password: "d"},
}

func TestCSV(t *testing.T) {
	assert.Equal(t, "Username,Password\na,b\nc,d", CSV(twoItems))
	assert.Equal(t, "Username,Password", CSV(nil))
}

func TestClipboardText(t *testing.T) {
	assert.Equal(t, "用户名: a | 密码: b\n用户名: c | 密码: d", ClipboardText(twoItems))
	assert.Equal(t, "", ClipboardText(nil))
}

func TestCSVKeepsResultOrder(t *testing.T) {
	items := []model.GeneratedItem{
		{Username: "SwiftGamer9", Password: "x"},
		{Username: "CoolDragon0", Password: "y"},
	}
	assert.Equal(t, "Username,Password\nSwiftGamer9,x\nCoolDragon0,y", CSV(items))
}
