package model

type Category struct {
	CategoryID  int64  `json:"categoryId" alias:"id"`
	Name        string `json:"name" alias:"categoryName"`
	Description string `json:"description,omitempty"`
}

type Favorite struct {
	FavoriteID  int64    `json:"favoriteId" alias:"id"`
	UserID      int64    `json:"userId"`
	ProductID   int64    `json:"productId"`
	CreatedDate FlexTime `json:"createdDate" alias:"createdAt"`
}

type Chat struct {
	ChatID      int64    `json:"chatId" alias:"id"`
	User1ID     int64    `json:"user1Id" alias:"buyerId"`
	User2ID     int64    `json:"user2Id" alias:"sellerId"`
	ProductID   int64    `json:"productId,omitempty"`
	CreatedDate FlexTime `json:"createdDate" alias:"createdAt"`
}

type Message struct {
	MessageID   int64    `json:"messageId" alias:"id"`
	ChatID      int64    `json:"chatId"`
	SenderID    int64    `json:"senderId"`
	Content     string   `json:"content" alias:"text"`
	IsRead      bool     `json:"isRead"`
	CreatedDate FlexTime `json:"createdDate" alias:"createdAt,sentAt"`
}

type Review struct {
	ReviewID    int64    `json:"reviewId" alias:"id"`
	ProductID   int64    `json:"productId"`
	ReviewerID  int64    `json:"reviewerId" alias:"userId"`
	Rating      int      `json:"rating"`
	Comment     string   `json:"comment,omitempty" alias:"content"`
	CreatedDate FlexTime `json:"createdDate" alias:"createdAt"`
}
