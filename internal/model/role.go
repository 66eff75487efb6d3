package model

// Role 练习岗位标识，取值封闭
type Role string

const (
	RoleProductManagement Role = "product-management"
	RoleAIDataAnalyst     Role = "ai-data-analyst"
	RoleQATesting         Role = "qa-testing"
	RoleCustomerSuccess   Role = "customer-success"
	RoleBusinessAnalyst   Role = "business-analyst"
)

// RoleInfo 岗位的展示元数据，供前端卡片渲染
// swagger:model
type RoleInfo struct {
	Key         Role   `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Duration    string `json:"duration"`
	Popularity  string `json:"popularity"`
	Gradient    string `json:"gradient"`
}

// roleCatalog 岗位元数据表，key 集合即合法岗位集合
var roleCatalog = map[Role]RoleInfo{
	RoleProductManagement: {
		Key:         RoleProductManagement,
		Title:       "Product Management",
		Description: "Practice feature prioritization, user research, and product strategy questions for APM roles.",
		Icon:        "lightbulb",
		Color:       "primary",
		Duration:    "~15 minutes",
		Popularity:  "Most Popular",
		Gradient:    "from-blue-500 to-blue-600",
	},
	RoleAIDataAnalyst: {
		Key:         RoleAIDataAnalyst,
		Title:       "AI/Data Analyst",
		Description: "Master data interpretation, SQL basics, and analytical thinking for data-driven roles.",
		Icon:        "chart-bar",
		Color:       "accent",
		Duration:    "~20 minutes",
		Popularity:  "High Demand",
		Gradient:    "from-orange-500 to-orange-600",
	},
	RoleQATesting: {
		Key:         RoleQATesting,
		Title:       "QA Testing",
		Description: "Learn test case design, bug reporting, and quality assurance methodologies.",
		Icon:        "bug",
		Color:       "success",
		Duration:    "~12 minutes",
		Popularity:  "Beginner Friendly",
		Gradient:    "from-green-500 to-green-600",
	},
	RoleCustomerSuccess: {
		Key:         RoleCustomerSuccess,
		Title:       "Customer Success",
		Description: "Practice client relationship management, problem-solving, and communication skills.",
		Icon:        "handshake",
		Color:       "purple",
		Duration:    "~18 minutes",
		Popularity:  "People-Focused",
		Gradient:    "from-purple-500 to-purple-600",
	},
	RoleBusinessAnalyst: {
		Key:         RoleBusinessAnalyst,
		Title:       "Business Analyst",
		Description: "Master process optimization, stakeholder management, and business requirement analysis.",
		Icon:        "cogs",
		Color:       "indigo",
		Duration:    "~16 minutes",
		Popularity:  "Career Switcher Friendly",
		Gradient:    "from-indigo-500 to-indigo-600",
	},
}

// roleOrder 固定展示顺序，map 遍历顺序不稳定
var roleOrder = []Role{
	RoleProductManagement,
	RoleAIDataAnalyst,
	RoleQATesting,
	RoleCustomerSuccess,
	RoleBusinessAnalyst,
}

// ValidRole 校验岗位标识是否合法
func ValidRole(r Role) bool {
	_, ok := roleCatalog[r]
	return ok
}

// RoleMeta 返回岗位元数据，岗位不合法时 ok 为 false
func RoleMeta(r Role) (RoleInfo, bool) {
	info, ok := roleCatalog[r]
	return info, ok
}

// AllRoles 按固定顺序返回全部岗位元数据
func AllRoles() []RoleInfo {
	infos := make([]RoleInfo, 0, len(roleOrder))
	for _, r := range roleOrder {
		infos = append(infos, roleCatalog[r])
	}
	return infos
}
