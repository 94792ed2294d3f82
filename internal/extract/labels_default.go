package extract

// featureLabels is the built-in localized→canonical table for traffic feature
// names, covering both top-level sources and homepage child features.
var featureLabels = map[string]string{
	// Top-level traffic sources
	"主页":              "Home",
	"（其他页面）":          "(other pages)",
	"宣传信息":            "Marketing Message",
	"营销信息":            "Marketing Message",
	"搜索建议":            "Search Suggestions",
	"直接导航":            "Direct Navigation",
	"Steam 客户端 - 库":   "Steam Client - Library",
	"外部网站":            "External Website",
	"机器人流量":           "Bot Traffic",
	"愿望单":             "Wishlist",
	"新品发布通知电子邮件":      "New Release Notification Email",
	"直接搜索结果":          "Direct Search Results",
	"探索队列":            "Discovery Queue",
	"免费开玩游戏中心":        "Free to Play Hub",
	"社区中心":            "Community Hub",
	"Steam 榜单":        "Steam Charts",
	"Steam 新品页":       "New on Steam Page",
	"标签页面":            "Tag Page",
	"浏览搜索结果":          "Browse Search Results",
	"Valve 网站":        "Valve Website",
	"热销商品 - 完整列表":     "Top Sellers - Full List",
	"其他产品页面":          "Other Product Pages",
	"社区中心 - 讨论":       "Community Hub - Discussions",
	"热销商品（全球）- 完整列表":  "Top Sellers (Global) - Full List",
	"社区 - 用户生成内容":     "Community - User Generated Content",
	"更多类似产品":          "More Like This",
	"鉴赏家或开发者主页":       "Curator or Developer Homepage",
	"新闻中心和活动":         "News Hub and Events",
	"热门新品发布 - 完整列表":   "Popular New Releases - Full List",
	"游戏 IFrame 小部件":   "Game IFrame Widget",
	"按标签浏览搜索结果":       "Browse Search Results By Tags",
	"社区 - 好友动态推送通知":   "Community - Friend Activity Feed",
	"即将推出页面":          "Upcoming Releases Page",
	"加入 Steam 页面":     "Join Steam Page",
	"游戏中心":            "Games Hub",
	"推荐信息":            "Recommendation Feed",
	"季节性特卖主页":         "Seasonal Sale Home Page",
	"所有\"即将推出\"":      "All Upcoming Releases Queue",
	"试用版新品发布通知电子邮件":   "New Demo Release Notification Email",
	"商店全局形象图":         "Store Global Header",
	"特卖页面":            "Sales Page",
	"Steam 实验室 - 微型宣传片": "Steam Labs - Microtrailers",
	"好友动态页面":          "Friend Activity Page",
	"Steam 客户端 - 好友及聊天": "Steam Client - Friends & Chat",
	"电子邮件":            "E-mail",
	"Steam 实验室":       "Steam Labs",
	"您的探索队列页面":        "Your Discovery Queue Page",
	"推荐 - 主页":         "Recommendations - Main",
	"新品队列":            "New Releases Queue",
	"即将推出 - 完整列表":     "Coming Soon - Full List",
	"热门标签页面":          "Popular Tags Page",
	"捆绑包页面":           "Bundle Page",
	"游戏 DLC 列表":       "Game DLC List",
	"促销页面":            "Promotion Page",
	"购物车页面":           "Cart Page",
	"您的帐户页面":          "Your Account Page",
	"Steam 客户端 - 好友游戏中通知": "Steam Client - Friend Is In-Game Notification",
	"关于 Steam":        "About Steam",
	"交互式推荐模型":         "Interactive Recommender",
	"推荐 - 查看好友推荐":     "Recommendations - View Friend Recommendaion",
	"MacOS 中心":        "MacOS Hub",

	// Homepage child features
	"置顶展示横幅":          "Takeover Banner",
	"人气蹿升的新品":         "New and Trending",
	"热销商品列表":          "Top Sellers List",
	"Steam 实验室社区推荐":   "Community Recommendations by Steam Labs",
	"主看板（热销商品）":       "Main Cluster (Top Seller)",
	"（其他）":            "(Other)",
	"最近查看过":           "Recently Viewed",
	"即将推出列表":          "Coming Soon List",
	"因为您玩过 X":         "Because You Played X",
	"好友间人气蹿升":         "Trending Among Friends",
	"主看板（鉴赏家推荐）":      "Main Cluster (Curator Recommendation)",
	"由所建议鉴赏家推荐":       "Recommended by a Suggested Curator",
	"由鉴赏家推荐，大版面":      "Recommended by Curators, large spot",
	"由鉴赏家推荐":          "Recommended by Curators",
	"主看板（好友推荐）":       "Main Cluster (Friend Recommendation)",
	"主看板（为您推荐）":       "Main Cluster (Recommended For You)",
	"由 Steam 实验室推荐":   "Recommended by Steam Labs",
	"主商店链接":           "Primary Store Link",
	"游戏内好友或聊天成员":      "In-Game Friend or Chat Member",
	"聊天中分享的链接":        "Link Shared in Chat",
	"图像":              "Image",
	"按钮":              "Button",
	"愿望单图像":           "Wishlist Image",
	"愿望单 - 查看详情按钮":    "Wishlist - View Details Button",
	"产品图像":            "Product Image",
	"截图":              "Screenshot",
	"搜索结果":            "Search Results",
	"搜索自动完成":          "Search Auto-complete",
	"热门作品":            "Popular Titles",
	"精选产品":            "Featured Products",
	"人气蹿升的新品列表":       "New & Trending List",
	"\"在您的愿望单上\"栏目":   "On Your Wishlist Section",
	"浏览内容 - 热门":       "Browse Items - Popular",
	"分面浏览":            "Faceted Browsing",
	"\"在愿望单中人气蹿升\"栏目": "Trending Wishlist Section",
	"浏览内容 - 在愿望单中人气蹿升": "Browse Items - Trending Wishlists",
	"浏览内容 - 搜索":       "Browse Items - Search",
	"浏览内容 - 全部":       "Browse Items - All",
	"\"最近活动\"栏目":      "Recent Events Section",
	"浏览内容 - 最受好评":     "Browse Items - Top Rated",
	"\"推荐\"栏目":        "Recommended Section",
	"浏览所有评测":          "Browse All Reviews",
	"浏览截图":            "Browse Screenshots",
	"浏览指南":            "Browse Guides",
	"浏览差评":            "Browse Negative Reviews",
	"浏览艺术作品":          "Browse Artwork",
	"浏览视频":            "Browse Videos",
	"浏览好评":            "Browse Positive Reviews",
	"浏览全部新闻":          "Browse All News",
	"浏览直播":            "Browse Broadcasts",
	"查看官方公告":          "View Official Announcement",
	"最热玩游戏":           "Most Played",
	"热销商品":            "Top Selling",
	"概览":              "Overview",
	"新品热销":            "New Top Sellers",
	"全部新品选项卡":         "All New Releases Tab",
	"顶部主宣传图":          "Top Main Capsules",
	"推荐新品":            "Recommended New Release",
	"带选项卡的栏目":         "Tabbed Section",
	"最热愿望单物品":         "Top Wishlisted Item",
	"鉴赏家精选推荐":         "Curator Featured Recommendations",
	"精选推荐":            "Featured Recommendations",
	"鉴赏家推荐":           "Recommended by Curators",
	"精选列表":            "Featured List",
	"精选标签部分":          "Featured Tag Section",
	"旧版鉴赏家推荐":         "Old Format Curator Recommendation",
	"痕迹导航":            "Breadcrumbs",
	"更多类似主要物品":        "More Like Main Item",
	"浏览内容 - 即将推出":     "Browse Items - Coming Soon",
	"浏览内容 - 打折中":      "Browse Items - Discounted",
	"浏览主题":            "Browse Topics",
	"单一主题":            "Single Topic",
	"活动单一主题":          "Event Single Topic",
	"搜索":              "Search",
	"被举报的单一主题":        "Reported Single Topic",
	"活动主题搜索":          "Event Topic Search",
	"加入 Steam":        "Join Steam",
	"鉴赏家评测":           "Curator Review",
	"公告":              "Announcement",
	"用户评测":            "User Review",
	"已发布截图":           "Screenshot Published",
	"已收藏物品":           "Item Favorited",
	"已发布艺术作品":         "Artwork Published",
	"已发布指南":           "Guide Published",
	"所有即将推出标签页":       "All Upcoming Releases Tab",
	"推荐栏":             "Recommendations Row",
	"来自愿望单":           "From Wishlist",
	"加入了愿望单的相似游戏":     "Similar by wishlist",
	"标签相似的游戏":         "Similar by tags",
	"好友评测":            "Friends reviews",
	"游玩时间相似的游戏":       "Similar by playtime",
	"嵌入小部件":           "Embedded Widget",
	"推荐 - 最近查看过的":     "Recommended - Recently Viewed",
	"推荐 - 更多最近查看过的":   "Recommended - More Recently Viewed",
	"好友推荐":            "Friend Recommendations",
	"最近玩过的类似应用":       "Similar Recent Apps",
	"DLC 父应用链接":       "DLC Parent App Link",
	"观看直播":            "Watch Broadcast",
	"视频":              "Video",
	"指南":              "Guide",
	"艺术作品":            "Artwork",
	"非游戏拥有者，首次通知":     "Non-Owner, First Notification",
	"非游戏拥有者，更多通知":     "Non-Owner, Additional Notifications",
	"游戏拥有者，首次通知":      "Game Owner, First Notification",
	"游戏拥有者，更多通知":      "Game Owner, Additional Notifications",
	"忽略的应用列表":         "Ignored App List",
	"宣传图":             "Capsule",
	"好友动态 - 焦点":       "Friend Activity - Spotlight",
	"来自所有者":           "From Owners",
}
