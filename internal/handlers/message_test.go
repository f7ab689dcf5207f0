package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/database"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/messaging"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userId", userID)
	return c, w
}

func seedBikeScenario(t *testing.T, suffix string) (sellerID, buyerA, buyerB, productID string) {
	t.Helper()
	SetupTestDB()

	sellerID = "seller_" + suffix
	buyerA = "buyerA_" + suffix
	buyerB = "buyerB_" + suffix
	productID = "bike_" + suffix

	database.DB.Create(&models.User{ID: sellerID, Name: "Sam", Email: sellerID + "@example.com"})
	database.DB.Create(&models.User{ID: buyerA, Name: "Asha", Email: buyerA + "@example.com"})
	database.DB.Create(&models.User{ID: buyerB, Name: "Bala", Email: buyerB + "@example.com"})
	database.DB.Create(&models.Product{ID: productID, Name: "Bike", Price: 120, UserID: sellerID, SellerName: "Sam"})

	// Buyer A asks first, buyer B later
	database.DB.Create(&models.Message{
		ID: "m1_" + suffix, ProductID: productID,
		SenderID: buyerA, SenderName: "Asha",
		ReceiverID: sellerID, ReceiverName: "Sam",
		Message: "Is this available?", CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	database.DB.Create(&models.Message{
		ID: "m2_" + suffix, ProductID: productID,
		SenderID: buyerB, SenderName: "Bala",
		ReceiverID: sellerID, ReceiverName: "Sam",
		Message: "Lower price?", CreatedAt: time.Now().Add(-1 * time.Hour),
	})
	return
}

func TestSendMessageAndReadYourWrite(t *testing.T) {
	sellerID, buyerA, _, productID := seedBikeScenario(t, "ryw")
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(SendMessageInput{
		ProductID:    productID,
		SenderID:     buyerA,
		ReceiverID:   sellerID,
		SenderName:   "Asha",
		ReceiverName: "Sam",
		Message:      "Can I pick it up tomorrow?",
	})

	c, w := testContext(t, buyerA)
	c.Request, _ = http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	SendMessage(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	// The insert must be immediately visible in the thread
	c2, w2 := testContext(t, buyerA)
	c2.Request, _ = http.NewRequest("GET", "/api/messages/"+productID, nil)
	c2.Params = gin.Params{{Key: "productId", Value: productID}}

	GetThread(c2)

	assert.Equal(t, http.StatusOK, w2.Code)

	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	json.Unmarshal(w2.Body.Bytes(), &resp)

	assert.Len(t, resp.Messages, 2)
	assert.Equal(t, "Can I pick it up tomorrow?", resp.Messages[1].Message)
}

func TestSendMessageMissingFieldRejected(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	// receiver_id missing
	body := []byte(`{"product_id":"p","sender_id":"a","sender_name":"A","receiver_name":"B","message":"hi"}`)

	c, w := testContext(t, "a")
	c.Request, _ = http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	SendMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ReceiverID")
}

func TestSendMessageToSelfRejected(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(SendMessageInput{
		ProductID:    "p",
		SenderID:     "a",
		ReceiverID:   "a",
		SenderName:   "A",
		ReceiverName: "A",
		Message:      "hi me",
	})

	c, w := testContext(t, "a")
	c.Request, _ = http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	SendMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessageEmptyAfterSanitizationRejected(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	// Passes the required-field binding but strips down to nothing
	body, _ := json.Marshal(SendMessageInput{
		ProductID:    "p",
		SenderID:     "a",
		ReceiverID:   "b",
		SenderName:   "A",
		ReceiverName: "B",
		Message:      "<script>alert(1)</script>",
	})

	c, w := testContext(t, "a")
	c.Request, _ = http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	SendMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty")
}

func TestSendMessageAsAnotherUserForbidden(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(SendMessageInput{
		ProductID:    "p",
		SenderID:     "a",
		ReceiverID:   "b",
		SenderName:   "A",
		ReceiverName: "B",
		Message:      "hi",
	})

	c, w := testContext(t, "someone_else")
	c.Request, _ = http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	SendMessage(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetThreadAsBuyer(t *testing.T) {
	_, buyerA, _, productID := seedBikeScenario(t, "buyer")
	gin.SetMode(gin.TestMode)

	// Buyer never supplies other_user_id; the seller is implied.
	c, w := testContext(t, buyerA)
	c.Request, _ = http.NewRequest("GET", "/api/messages/"+productID, nil)
	c.Params = gin.Params{{Key: "productId", Value: productID}}

	GetThread(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	// Only A's exchange with the seller, not B's
	assert.Len(t, resp.Messages, 1)
	assert.Equal(t, buyerA, resp.Messages[0].SenderID)
}

func TestGetThreadAsSellerWithCounterparty(t *testing.T) {
	sellerID, buyerA, buyerB, productID := seedBikeScenario(t, "sellercp")
	gin.SetMode(gin.TestMode)

	c, w := testContext(t, sellerID)
	c.Request, _ = http.NewRequest("GET", "/api/messages/"+productID+"?other_user_id="+buyerA, nil)
	c.Params = gin.Params{{Key: "productId", Value: productID}}

	GetThread(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	assert.Len(t, resp.Messages, 1)
	assert.Equal(t, "Is this available?", resp.Messages[0].Message)
	for _, m := range resp.Messages {
		assert.NotEqual(t, buyerB, m.SenderID)
	}
}

func TestGetThreadAsSellerWithoutCounterpartyRedirects(t *testing.T) {
	sellerID, _, _, productID := seedBikeScenario(t, "redirect")
	gin.SetMode(gin.TestMode)

	c, w := testContext(t, sellerID)
	c.Request, _ = http.NewRequest("GET", "/api/messages/"+productID, nil)
	c.Params = gin.Params{{Key: "productId", Value: productID}}

	GetThread(c)

	// Not an error: the client is told to fetch the buyer roster instead.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "buyers", resp["redirect_to"])
	assert.NotContains(t, w.Body.String(), "messages")
}

func TestGetThreadUnknownProduct(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	c, w := testContext(t, "anyone")
	c.Request, _ = http.NewRequest("GET", "/api/messages/nope", nil)
	c.Params = gin.Params{{Key: "productId", Value: "nope"}}

	GetThread(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductBuyersRoster(t *testing.T) {
	sellerID, buyerA, buyerB, productID := seedBikeScenario(t, "roster")
	gin.SetMode(gin.TestMode)

	c, w := testContext(t, sellerID)
	c.Request, _ = http.NewRequest("GET", "/api/products/"+productID+"/buyers", nil)
	c.Params = gin.Params{{Key: "id", Value: productID}}

	GetProductBuyers(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Buyers []messaging.RosterEntry `json:"buyers"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	// B messaged later, so B comes first
	assert.Len(t, resp.Buyers, 2)
	assert.Equal(t, buyerB, resp.Buyers[0].ID)
	assert.Equal(t, buyerA, resp.Buyers[1].ID)
	for _, b := range resp.Buyers {
		assert.NotEqual(t, sellerID, b.ID)
	}
}

func TestGetConversationsForSeller(t *testing.T) {
	sellerID, _, _, productID := seedBikeScenario(t, "convs")
	gin.SetMode(gin.TestMode)

	c, w := testContext(t, sellerID)
	c.Request, _ = http.NewRequest("GET", "/api/conversations", nil)

	GetConversations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Conversations []messaging.ConversationEntry `json:"conversations"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	assert.Len(t, resp.Conversations, 2)
	for _, entry := range resp.Conversations {
		assert.Equal(t, productID, entry.ProductID)
	}
}

func TestGetConversationsSplitsAcrossProducts(t *testing.T) {
	_, buyerA, _, _ := seedBikeScenario(t, "cross")
	gin.SetMode(gin.TestMode)

	// Buyer A also messages a different seller about a different product
	database.DB.Create(&models.User{ID: "sellerT_cross", Name: "Tariq", Email: "t_cross@example.com"})
	database.DB.Create(&models.Product{ID: "lamp_cross", Name: "Lamp", Price: 15, UserID: "sellerT_cross", SellerName: "Tariq"})
	database.DB.Create(&models.Message{
		ID: "m3_cross", ProductID: "lamp_cross",
		SenderID: buyerA, SenderName: "Asha",
		ReceiverID: "sellerT_cross", ReceiverName: "Tariq",
		Message: "Still got the lamp?", CreatedAt: time.Now(),
	})

	c, w := testContext(t, buyerA)
	c.Request, _ = http.NewRequest("GET", "/api/conversations", nil)

	GetConversations(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Conversations []messaging.ConversationEntry `json:"conversations"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	assert.Len(t, resp.Conversations, 2)
	assert.NotEqual(t, resp.Conversations[0].ProductID, resp.Conversations[1].ProductID)
}
