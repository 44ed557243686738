package ax

// Role classifies what a node is: the single coarse category that platform
// accessibility APIs key their behavior on. Unlike properties, every node
// has exactly one role, so it is stored in NodeClass rather than in the
// sparse property storage.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleGenericContainer
	RoleWindow
	RoleDialog
	RoleButton
	RoleToggleButton
	RoleCheckBox
	RoleRadioButton
	RoleSwitch
	RoleStaticText
	RoleTextInput
	RoleImage
	RoleLink
	RoleHeading
	RoleList
	RoleListItem
	RoleMenu
	RoleMenuItem
	RoleComboBox
	RoleSlider
	RoleProgressIndicator
	RoleScrollBar
	RoleTab
	RoleTabList
	RoleTable
	RoleRow
	RoleCell
	RoleToolbar
	RoleTooltip

	// NumRoles is the size of the role domain. Not itself a valid role.
	NumRoles
)

var roleNames = [NumRoles]string{
	RoleUnknown:           "Unknown",
	RoleGenericContainer:  "GenericContainer",
	RoleWindow:            "Window",
	RoleDialog:            "Dialog",
	RoleButton:            "Button",
	RoleToggleButton:      "ToggleButton",
	RoleCheckBox:          "CheckBox",
	RoleRadioButton:       "RadioButton",
	RoleSwitch:            "Switch",
	RoleStaticText:        "StaticText",
	RoleTextInput:         "TextInput",
	RoleImage:             "Image",
	RoleLink:              "Link",
	RoleHeading:           "Heading",
	RoleList:              "List",
	RoleListItem:          "ListItem",
	RoleMenu:              "Menu",
	RoleMenuItem:          "MenuItem",
	RoleComboBox:          "ComboBox",
	RoleSlider:            "Slider",
	RoleProgressIndicator: "ProgressIndicator",
	RoleScrollBar:         "ScrollBar",
	RoleTab:               "Tab",
	RoleTabList:           "TabList",
	RoleTable:             "Table",
	RoleRow:               "Row",
	RoleCell:              "Cell",
	RoleToolbar:           "Toolbar",
	RoleTooltip:           "Tooltip",
}

// Valid returns true if r is within the enumerated role domain.
func (r Role) Valid() bool {
	return r < NumRoles
}

// String returns the role name, or "?" for out-of-range values.
func (r Role) String() string {
	if !r.Valid() {
		return "?"
	}
	return roleNames[r]
}
